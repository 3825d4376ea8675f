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

package board_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge/banks"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/hardware/mainboard"
	"github.com/jetsetilly/gophernes/test"
)

func prgImage(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = uint8(i >> 13)
	}
	return d
}

func newBase(t *testing.T, ctx board.Context) (*board.Base, *mainboard.Mainboard) {
	t.Helper()
	mb := mainboard.NewMainboard()
	ctx.Env = environment.NewEnvironment(environment.MainEmulation, mb.CPU, nil, nil)
	ctx.Env.Normalise()
	ctx.CPU = mb.CPU
	ctx.PPU = mb.PPU
	b, err := board.NewBase(ctx)
	test.DemandSuccess(t, err)
	b.ResetBase(true)
	return b, mb
}

func TestDefaultMapping(t *testing.T) {
	b, _ := newBase(t, board.Context{PRG: prgImage(0x10000), WRAMSize: 0x2000})

	test.ExpectEquality(t, b.ReadCPU(0x8000), 0)
	test.ExpectEquality(t, b.ReadCPU(0xffff), 3)

	// 8K of CHR-RAM when there is no CHR-ROM
	test.ExpectEquality(t, b.CHR.Size(), banks.Size8K)
	test.ExpectSuccess(t, b.CHR.Writable)

	w := &test.CompareWriter{}
	w.Write([]byte(b.MappedBanks()))
	test.ExpectSuccess(t, w.Compare("8000-ffff PRG-ROM 0x0\n6000-7fff WRAM 0x0\n0000-1fff CHR-RAM 0x0\n"))

	// without RAM the $6000 range isn't described
	b, _ = newBase(t, board.Context{PRG: prgImage(0x4000), CHR: prgImage(0x2000)})
	w.Clear()
	w.Write([]byte(b.MappedBanks()))
	test.ExpectSuccess(t, w.Compare("8000-bfff PRG-ROM 0x0\nc000-ffff PRG-ROM 0x0\n0000-1fff CHR-ROM 0x0\n"))
}

func TestDispatch(t *testing.T) {
	b, _ := newBase(t, board.Context{PRG: prgImage(0x8000), WRAMSize: 0x2000, CHRRAMSize: 0x2000})

	b.WriteCPU(0x6001, 0x42)
	test.ExpectEquality(t, b.ReadCPU(0x6001), 0x42)
	test.ExpectEquality(t, b.PeekCPU(0x6001), 0x42)

	// unmapped addresses are open bus
	test.ExpectEquality(t, b.ReadCPU(0x4020), 0x40)
	test.ExpectEquality(t, b.ReadCPU(0x5fff), 0x5f)

	// ROM is not writable
	b.WriteCPU(0x8000, 0xff)
	test.ExpectEquality(t, b.ReadCPU(0x8000), 0x00)

	// PPU addresses are limited to the pattern tables
	b.WriteCHR(0x3234, 0x55)
	test.ExpectEquality(t, b.ReadCHR(0x1234), 0x55)
}

func TestMirroring(t *testing.T) {
	b, mb := newBase(t, board.Context{PRG: prgImage(0x8000), Mirroring: bus.Horizontal})
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.Horizontal)

	b.SetMirroring(bus.SingleScreenB)
	test.ExpectEquality(t, b.Mirroring(), bus.SingleScreenB)
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.SingleScreenB)

	// a soft reset leaves the mirroring alone. a hard reset restores the
	// header mirroring
	b.ResetBase(false)
	test.ExpectEquality(t, b.Mirroring(), bus.SingleScreenB)
	b.ResetBase(true)
	test.ExpectEquality(t, b.Mirroring(), bus.Horizontal)

	b, mb = newBase(t, board.Context{PRG: prgImage(0x8000), Mirroring: bus.FourScreen})
	b.SetMirroring(bus.Vertical)
	test.ExpectEquality(t, b.Mirroring(), bus.FourScreen)
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.FourScreen)
}

func TestBaseState(t *testing.T) {
	ctx := board.Context{PRG: prgImage(0x20000), WRAMSize: 0x2000, Mirroring: bus.Vertical}

	b, _ := newBase(t, ctx)
	b.PRGBanks.Swap(banks.Size16K, 0x8000, 5)
	b.CHRBanks.Swap(banks.Size4K, 0x1000, 0)
	b.WriteCPU(0x7000, 0x12)
	b.WriteCHR(0x1800, 0x34)
	b.SetMirroring(bus.SingleScreenA)

	s := state.NewSaver()
	b.SaveBase(s)
	data := s.Bytes()

	f, mb := newBase(t, ctx)
	l := state.NewLoader(data)
	id := l.Begin()
	test.DemandSuccess(t, f.LoadBase(l, id))
	l.End()
	test.ExpectSuccess(t, l.Err())

	test.ExpectEquality(t, f.MappedBanks(), b.MappedBanks())
	test.ExpectEquality(t, f.ReadCPU(0x8000), 10)
	test.ExpectEquality(t, f.ReadCPU(0x7000), 0x12)
	test.ExpectEquality(t, f.ReadCHR(0x1800), 0x34)
	test.ExpectEquality(t, f.Mirroring(), bus.SingleScreenA)
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.SingleScreenA)

	// a chunk with a different tag is not loaded
	s = state.NewSaver()
	s.Begin(state.NewID("XYZ", 1))
	s.End()
	l = state.NewLoader(s.Bytes())
	test.ExpectFailure(t, f.LoadBase(l, l.Begin()))
	l.End()
}

func TestBattery(t *testing.T) {
	b, _ := newBase(t, board.Context{PRG: prgImage(0x8000), WRAMSize: 0x2000})
	test.ExpectEquality(t, len(b.BatteryData()), 0)
	err := b.LoadBatteryData(make([]byte, 0x2000))
	test.ExpectSuccess(t, curated.Is(err, board.BatteryError))

	b, _ = newBase(t, board.Context{PRG: prgImage(0x8000), WRAMSize: 0x2000, Battery: true})
	b.WriteCPU(0x6000, 0x77)
	b.ResetBase(true)
	test.DemandEquality(t, len(b.BatteryData()), 0x2000)
	test.ExpectEquality(t, b.BatteryData()[0], 0x77)

	data := bytes.Repeat([]byte{0xaa}, 0x2000)
	test.ExpectSuccess(t, b.LoadBatteryData(data))
	test.ExpectEquality(t, b.ReadCPU(0x7fff), 0xaa)

	// data of the wrong size is copied as far as possible
	err = b.LoadBatteryData([]byte{0x01, 0x02})
	test.ExpectSuccess(t, curated.Is(err, board.BatteryError))
	test.ExpectEquality(t, b.ReadCPU(0x6001), 0x02)
	test.ExpectEquality(t, b.ReadCPU(0x6002), 0xaa)
}

func TestRandomState(t *testing.T) {
	mb := mainboard.NewMainboard()
	env := environment.NewEnvironment(environment.MainEmulation, mb.CPU, nil, nil)
	env.Normalise()
	test.DemandSuccess(t, env.Prefs.RandomState.Set(true))

	b, err := board.NewBase(board.Context{Env: env, CPU: mb.CPU, PPU: mb.PPU, PRG: prgImage(0x8000), WRAMSize: 0x2000})
	test.DemandSuccess(t, err)
	b.ResetBase(true)

	var nonzero bool
	for _, v := range b.WRAM.Data {
		if v != 0 {
			nonzero = true
			break
		}
	}
	test.ExpectSuccess(t, nonzero)
}

func TestAllocation(t *testing.T) {
	mb := mainboard.NewMainboard()
	env := environment.NewEnvironment(environment.MainEmulation, mb.CPU, nil, nil)

	_, err := board.NewBase(board.Context{Env: env, CPU: mb.CPU, PPU: mb.PPU, PRG: prgImage(0x8000), CHRRAMSize: 0x8000000})
	test.ExpectSuccess(t, curated.Is(err, board.AllocationError))

	_, err = board.NewBase(board.Context{Env: env, CPU: mb.CPU, PPU: mb.PPU, PRG: prgImage(0x8000), CHRRAMSize: -1})
	test.ExpectSuccess(t, curated.Is(err, board.AllocationError))

	// the largest size a header can describe is allowed but one byte more is not
	_, err = board.NewBase(board.Context{Env: env, CPU: mb.CPU, PPU: mb.PPU, PRG: prgImage(0x8000), CHRRAMSize: 0x100000})
	test.ExpectSuccess(t, err)

	_, err = board.NewBase(board.Context{Env: env, CPU: mb.CPU, PPU: mb.PPU, PRG: prgImage(0x8000), CHRRAMSize: 0x100001})
	test.ExpectSuccess(t, curated.Is(err, board.AllocationError))
}
