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

package boards_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/test"
)

func (r *rig) fme7(command uint8, parameter uint8) {
	r.mb.Store(0x8000, command)
	r.mb.Store(0xa000, parameter)
}

func TestFME7Banks(t *testing.T) {
	r := newRig(t, board.Context{Mapper: 69, PRG: prgImage(0x40000), CHR: chrImage(0x40000)})

	test.ExpectEquality(t, r.mb.Read(0x8000), 0)
	test.ExpectEquality(t, r.mb.Read(0xe000), 31)

	r.fme7(0x09, 0x03)
	r.fme7(0x0a, 0x04)
	r.fme7(0x0b, 0x45)
	test.ExpectEquality(t, r.mb.Read(0x8000), 3)
	test.ExpectEquality(t, r.mb.Read(0xa000), 4)
	test.ExpectEquality(t, r.mb.Read(0xc000), 5)
	test.ExpectEquality(t, r.mb.Read(0xe000), 31)

	r.fme7(0x03, 0x20)
	test.ExpectEquality(t, r.board.ReadCHR(0x0c00), 32)
	test.ExpectEquality(t, r.board.ReadCHR(0x1000), 0)

	for v, m := range []bus.Mirroring{bus.Vertical, bus.Horizontal, bus.SingleScreenA, bus.SingleScreenB} {
		r.fme7(0x0c, uint8(v))
		test.ExpectEquality(t, r.mb.PPU.Mirroring(), m)
	}

	// ROM at $6000
	r.fme7(0x08, 0x07)
	test.ExpectEquality(t, r.mb.Read(0x6000), 7)
	test.ExpectSuccess(t, strings.Contains(r.board.MappedBanks(), "6000-7fff PRG-ROM"))
}

func TestFME7RAM(t *testing.T) {
	r := newRig(t, board.Context{Mapper: 69, PRG: prgImage(0x40000), CHR: chrImage(0x40000), WRAMSize: 0x2000})

	// RAM selected and enabled
	r.fme7(0x08, 0xc0)
	r.mb.Store(0x6000, 0x42)
	test.ExpectEquality(t, r.mb.Read(0x6000), 0x42)

	// RAM selected but not enabled
	r.fme7(0x08, 0x40)
	test.ExpectEquality(t, r.mb.Read(0x6000), 0x60)
	r.mb.Store(0x6000, 0x99)

	// ROM selected
	r.fme7(0x08, 0x02)
	test.ExpectEquality(t, r.mb.Read(0x6000), 2)
	r.mb.Store(0x6000, 0x99)

	r.fme7(0x08, 0xc0)
	test.ExpectEquality(t, r.mb.Read(0x6000), 0x42)
}

func TestFME7IRQ(t *testing.T) {
	r := newRig(t, board.Context{Mapper: 69, PRG: prgImage(0x40000), CHR: chrImage(0x40000)})

	r.fme7(0x0e, 10)
	r.fme7(0x0f, 0)
	r.fme7(0x0d, 0x81)

	// the interrupt happens when the counter decrements from zero
	r.mb.Step(10)
	test.ExpectFailure(t, r.mb.CPU.IRQ())
	r.mb.Step(1)
	test.ExpectSuccess(t, r.mb.CPU.IRQ())

	// writing to the control register acknowledges the interrupt. the
	// counter continues from $ffff
	r.fme7(0x0d, 0x81)
	test.ExpectFailure(t, r.mb.CPU.IRQ())
	r.mb.Step(0xfff0)
	test.ExpectFailure(t, r.mb.CPU.IRQ())
	r.mb.Step(10)
	test.ExpectSuccess(t, r.mb.CPU.IRQ())

	// counting without the interrupt
	r.fme7(0x0e, 5)
	r.fme7(0x0f, 0)
	r.fme7(0x0d, 0x80)
	r.mb.Step(100)
	test.ExpectFailure(t, r.mb.CPU.IRQ())

	// interrupt enabled but not counting
	r.fme7(0x0e, 5)
	r.fme7(0x0f, 0)
	r.fme7(0x0d, 0x01)
	r.mb.Step(100)
	test.ExpectFailure(t, r.mb.CPU.IRQ())

	// a hard reset stops the counter
	r.fme7(0x0d, 0x81)
	r.board.Reset(true)
	r.mb.Step(0x20000)
	test.ExpectFailure(t, r.mb.CPU.IRQ())
}
