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

	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// the bit of the PPU address that is A12
const a12 = 0x1000

// DefaultFilter is the default number of PPU cycles that A12 must be low
// before a rising edge clocks the unit.
const DefaultFilter = 16

// A12 clocks a Unit on rising edges of the PPU address line A12.
type A12 struct {
	cpu  bus.CPU
	ppu  bus.PPU
	unit Unit

	// rising edges that come less than filter PPU cycles after the last
	// access with A12 high are ignored
	filter uint64

	// the PPU cycle of the most recent access with A12 high
	lastHigh uint64

	// the state of A12 on the most recent access
	line bool

	connected bool
}

// NewA12 is the preferred method of initialisation for the A12 type. The
// timer is not connected until Reset() or Connect() is called.
func NewA12(cpu bus.CPU, ppu bus.PPU, unit Unit, filter int) *A12 {
	return &A12{
		cpu:    cpu,
		ppu:    ppu,
		unit:   unit,
		filter: uint64(max(filter, 0)),
	}
}

func (a *A12) String() string {
	if !a.connected {
		return "A12 disconnected"
	}
	return fmt.Sprintf("A12 line=%v filter=%d", a.line, a.filter)
}

// SetFilter changes the number of PPU cycles used to filter rising edges.
func (a *A12) SetFilter(filter int) {
	a.filter = uint64(max(filter, 0))
}

// Reset the timer and the unit.
func (a *A12) Reset(hard bool, connect bool) {
	a.unit.Reset(hard)
	a.line = false
	a.lastHigh = 0
	a.Connect(connect)
}

// Connect installs or removes the timer as the PPU address line hook.
func (a *A12) Connect(connect bool) {
	a.connected = connect
	if connect {
		a.ppu.SetAddressLineHook(a)
	} else {
		a.ppu.SetAddressLineHook(nil)
	}
}

// Connected returns true if the timer is receiving PPU addresses.
func (a *A12) Connected() bool {
	return a.connected
}

// AddressLine implements the bus.LineHook interface.
func (a *A12) AddressLine(addr uint16) {
	if !a.connected {
		return
	}

	if addr&a12 == 0 {
		a.line = false
		return
	}

	now := a.ppu.Cycles()
	if !a.line && now-a.lastHigh >= a.filter {
		if a.unit.Clock() {
			a.cpu.AssertIRQ()
		}
	}

	a.line = true
	a.lastHigh = now
}

// ClearIRQ lowers the IRQ line. The unit must be acknowledged separately.
func (a *A12) ClearIRQ() {
	a.cpu.ClearIRQ()
}

// SaveState writes the timer to the current chunk. The unit is not saved.
func (a *A12) SaveState(s *state.Saver) {
	s.WriteBool(a.line)
	s.Write64(a.ppu.Cycles() - a.lastHigh)
}

// LoadState restores the timer from the current chunk.
func (a *A12) LoadState(l *state.Loader) {
	a.line = l.ReadBool()

	now := a.ppu.Cycles()
	a.lastHigh = now - min(l.Read64(), now)
}
