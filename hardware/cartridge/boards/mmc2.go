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

package boards

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cartridge/banks"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/decoder"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

var (
	mmc2ID    = state.NewID("MC2", 1)
	mmc2RegID = state.NewID("LRG", 1)
)

// mmc2 has two CHR latches, one for each pattern table. a latch is set by the
// PPU fetching tile $fd or $fe and selects which of two 4K banks is mapped
// into that pattern table. the bank changes after the fetch that sets the
// latch
//
// PRG is 8K switchable at $8000 with the last three 8K banks fixed at $a000
type mmc2 struct {
	*board.Base

	prg uint8

	// CHR bank registers. the first index is the pattern table and the
	// second index is the latch value
	chr [2][2]uint8

	// false is latch value $fd and true is $fe
	latch [2]bool

	mirroring uint8
}

func newMMC2(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	return &mmc2{Base: base}, nil
}

func (b *mmc2) Name() string {
	return "PxROM"
}

func latchName(l bool) string {
	if l {
		return "FE"
	}
	return "FD"
}

func (b *mmc2) String() string {
	return fmt.Sprintf("%s [%s, %s] prg=%d chr=%v latch=%s/%s", b.Name(), b.PRG, b.CHR,
		b.prg, b.chr, latchName(b.latch[0]), latchName(b.latch[1]))
}

func (b *mmc2) StateID() state.ID {
	return mmc2ID
}

func (b *mmc2) Reset(hard bool) {
	b.ResetBase(hard)

	b.CPUMap.MapWrite(0xa000, 0xafff, decoder.WriteFunc(func(_ uint16, data uint8) {
		b.prg = data & 0x0f
		b.mapBanks()
	}))
	b.CPUMap.MapWrite(0xb000, 0xefff, decoder.WriteFunc(b.writeCHR))
	b.CPUMap.MapWrite(0xf000, 0xffff, decoder.WriteFunc(func(_ uint16, data uint8) {
		b.mirroring = data & 0x01
		b.mapMirroring()
	}))

	b.CHRMap.MapRead(0x0000, 0x1fff, &latchReader{b: b})

	if hard {
		b.prg = 0
		b.chr = [2][2]uint8{}
		b.latch = [2]bool{}
		b.mapBanks()
	}
}

// $b000 to $efff in 4K steps select the four CHR bank registers
func (b *mmc2) writeCHR(addr uint16, data uint8) {
	r := (addr - 0xb000) >> 12
	b.chr[r>>1][r&0x01] = data & 0x1f
	b.mapBanks()
}

func (b *mmc2) mapMirroring() {
	if b.mirroring == 0 {
		b.SetMirroring(bus.Vertical)
	} else {
		b.SetMirroring(bus.Horizontal)
	}
}

func (b *mmc2) mapBanks() {
	b.PRGBanks.Swap(banks.Size8K, 0x8000, int(b.prg))
	b.PRGBanks.Swap(banks.Size8K, 0xa000, -3)
	b.PRGBanks.Swap(banks.Size8K, 0xc000, -2)
	b.PRGBanks.Swap(banks.Size8K, 0xe000, -1)
	b.mapCHR()
}

func (b *mmc2) mapCHR() {
	for i := range b.latch {
		var l int
		if b.latch[i] {
			l = 1
		}
		b.CHRBanks.Swap(banks.Size4K, uint16(i)<<12, int(b.chr[i][l]))
	}
}

// latchReader reads CHR and updates the latches
type latchReader struct {
	b *mmc2
}

func (r *latchReader) Read(addr uint16) uint8 {
	v := r.b.CHRBanks.Read(addr)

	// the latch for the first pattern table is triggered by a single address.
	// the latch for the second pattern table is triggered by a range of
	// eight addresses
	switch {
	case addr == 0x0fd8:
		r.set(0, false)
	case addr == 0x0fe8:
		r.set(0, true)
	case addr >= 0x1fd8 && addr <= 0x1fdf:
		r.set(1, false)
	case addr >= 0x1fe8 && addr <= 0x1fef:
		r.set(1, true)
	}

	return v
}

// Peek reads CHR without changing the latches.
func (r *latchReader) Peek(addr uint16) uint8 {
	return r.b.CHRBanks.Read(addr)
}

func (r *latchReader) set(table int, fe bool) {
	if r.b.latch[table] != fe {
		r.b.latch[table] = fe
		r.b.mapCHR()
	}
}

func (b *mmc2) SaveState(s *state.Saver) {
	b.SaveBase(s)

	s.Begin(mmc2RegID)
	s.Write8(b.prg)
	for i := range b.chr {
		s.Write8(b.chr[i][0])
		s.Write8(b.chr[i][1])
	}
	s.WriteBool(b.latch[0])
	s.WriteBool(b.latch[1])
	s.Write8(b.mirroring)
	s.End()
}

func (b *mmc2) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		if id.SameTag(mmc2RegID) {
			b.prg = l.Read8()
			for i := range b.chr {
				b.chr[i][0] = l.Read8()
				b.chr[i][1] = l.Read8()
			}
			b.latch[0] = l.ReadBool()
			b.latch[1] = l.ReadBool()
			b.mirroring = l.Read8() & 0x01
		}
	})
}
