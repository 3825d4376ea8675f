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

// M2 clocks a Unit from the CPU clock.
type M2 struct {
	cpu  bus.CPU
	unit Unit

	// the number of CPU cycles between each clock of the unit
	multiplier uint64

	// the master clock cycle at which the unit will next be clocked
	next uint64

	connected bool
}

// NewM2 is the preferred method of initialisation for the M2 type. The unit
// is clocked once every multiplier CPU cycles. The timer is not connected
// until Reset() or Connect() is called.
func NewM2(cpu bus.CPU, unit Unit, multiplier int) *M2 {
	return &M2{
		cpu:        cpu,
		unit:       unit,
		multiplier: uint64(max(multiplier, 1)),
	}
}

func (m *M2) String() string {
	if !m.connected {
		return "M2 disconnected"
	}
	return fmt.Sprintf("M2 next=%d", m.next)
}

func (m *M2) period() uint64 {
	return m.cpu.ClockDivider() * m.multiplier
}

// Reset the timer and the unit.
func (m *M2) Reset(hard bool, connect bool) {
	m.unit.Reset(hard)
	m.connected = connect
	m.next = m.cpu.Cycles() + m.period()
}

// Connect starts or stops the clock. Time spent disconnected is skipped,
// not caught up.
func (m *M2) Connect(connect bool) {
	if connect && !m.connected {
		m.next = m.cpu.Cycles() + m.period()
	}
	m.connected = connect
}

// Connected returns true if the clock is running.
func (m *M2) Connected() bool {
	return m.connected
}

// Update clocks the unit for every CPU cycle since the last update. The
// result is the same however often Update() is called.
func (m *M2) Update() {
	if !m.connected {
		return
	}

	now := m.cpu.Cycles()
	p := m.period()
	for m.next <= now {
		if m.unit.Clock() {
			m.cpu.AssertIRQ()
		}
		m.next += p
	}
}

// Clock the unit once, outside of the normal clock schedule.
func (m *M2) Clock() {
	if m.connected && m.unit.Clock() {
		m.cpu.AssertIRQ()
	}
}

// ClearIRQ lowers the IRQ line. The unit must be acknowledged separately.
func (m *M2) ClearIRQ() {
	m.cpu.ClearIRQ()
}

// SaveState writes the timer to the current chunk. The unit is not saved.
func (m *M2) SaveState(s *state.Saver) {
	m.Update()

	s.WriteBool(m.connected)
	s.Write64(m.next - m.cpu.Cycles())
}

// LoadState restores the timer from the current chunk. The schedule is
// relative to the current CPU cycle.
func (m *M2) LoadState(l *state.Loader) {
	m.connected = l.ReadBool()

	delta := l.Read64()
	if delta == 0 || delta > m.period() {
		delta = m.period()
	}
	m.next = m.cpu.Cycles() + delta
}
