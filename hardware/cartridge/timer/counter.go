// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

package timer

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// Unit is the counting part of a timer.
type Unit interface {
	// Reset the unit. A soft reset may leave some state unchanged.
	Reset(hard bool)

	// Clock the unit once. Returns true if the unit wants the IRQ line to be
	// asserted.
	Clock() bool
}

// CounterState summarises the state of a Counter.
type CounterState int

// List of valid CounterState values.
const (
	Idle CounterState = iota
	Armed
	Pending
)

func (s CounterState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Pending:
		return "pending"
	}
	return "unknown"
}

// Counter is a 16 bit down counter with a reload latch.
type Counter struct {
	Count uint16
	Latch uint16

	// the count is decremented on every clock
	Counting bool

	// an interrupt is raised when the count expires
	IRQEnabled bool

	// an interrupt has been raised and not yet acknowledged
	Pending bool

	// the count expires when it is decremented from zero rather than when
	// it is decremented to zero
	Underflow bool

	// the count is reloaded from the latch when it expires
	AutoReload bool

	// a soft reset has the same effect as a hard reset
	ClearOnSoftReset bool
}

func (c *Counter) String() string {
	return fmt.Sprintf("count=%#04x latch=%#04x %s", c.Count, c.Latch, c.State())
}

// Reset implements the Unit interface.
func (c *Counter) Reset(hard bool) {
	if hard || c.ClearOnSoftReset {
		c.Count = 0
		c.Latch = 0
		c.Counting = false
		c.IRQEnabled = false
		c.Pending = false
	}
}

// Clock implements the Unit interface.
func (c *Counter) Clock() bool {
	if !c.Counting {
		return false
	}

	var expired bool

	if c.Underflow {
		expired = c.Count == 0
		c.Count--
	} else if c.Count > 0 {
		c.Count--
		expired = c.Count == 0
	}

	if !expired {
		return false
	}

	if c.AutoReload {
		c.Count = c.Latch
	}

	if c.IRQEnabled && !c.Pending {
		c.Pending = true
		return true
	}

	return false
}

// Enable counting and interrupts.
func (c *Counter) Enable() {
	c.Counting = true
	c.IRQEnabled = true
}

// Disable counting and interrupts. A pending interrupt is not acknowledged.
func (c *Counter) Disable() {
	c.Counting = false
	c.IRQEnabled = false
}

// SetLatch sets the reload value.
func (c *Counter) SetLatch(v uint16) {
	c.Latch = v
}

// Reload copies the latch to the count.
func (c *Counter) Reload() {
	c.Count = c.Latch
}

// ClearIRQ acknowledges a pending interrupt.
func (c *Counter) ClearIRQ() {
	c.Pending = false
}

// State returns a summary of the counter state.
func (c *Counter) State() CounterState {
	if c.Pending {
		return Pending
	}
	if c.Counting && c.IRQEnabled {
		return Armed
	}
	return Idle
}

// SaveState writes the counter to the current chunk. Configuration fields
// are not saved.
func (c *Counter) SaveState(s *state.Saver) {
	s.Write16(c.Count)
	s.Write16(c.Latch)
	s.WriteBool(c.Counting)
	s.WriteBool(c.IRQEnabled)
	s.WriteBool(c.Pending)
}

// LoadState restores the counter from the current chunk.
func (c *Counter) LoadState(l *state.Loader) {
	c.Count = l.Read16()
	c.Latch = l.Read16()
	c.Counting = l.ReadBool()
	c.IRQEnabled = l.ReadBool()
	c.Pending = l.ReadBool()
}
