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
	"github.com/jetsetilly/gophernes/logger"
)

var (
	mmc1ID    = state.NewID("MC1", 1)
	mmc1RegID = state.NewID("SR1", 1)
)

// mmc1 registers are written one bit at a time through a serial port at
// $8000-$ffff. five writes fill the shift register and the fifth write
// selects the register by address:
//
//	$8000-$9fff	control
//	$a000-$bfff	CHR bank 0
//	$c000-$dfff	CHR bank 1
//	$e000-$ffff	PRG bank
//
// writing a value with bit 7 set resets the shift register.
type mmc1 struct {
	*board.Base

	shift uint8
	count uint8

	control uint8
	chr0    uint8
	chr1    uint8
	prg     uint8

	// the serial port ignores a write on the cycle following another write.
	// this happens with read-modify-write instructions
	lastWrite uint64
	written   bool

	// PRG is 512K and bit 4 of CHR bank 0 selects the 256K half
	surom bool

	// the function that maps banks from the register values. boards that
	// use the MMC1 in an unusual way replace it
	mapBanks func()
}

func newMMC1(ctx board.Context) (board.Board, error) {
	b, err := makeMMC1(ctx)
	if err != nil {
		return nil, err
	}
	if b.surom {
		logger.Logf(ctx.Env, "MMC1", "SUROM: %s", b.PRG)
	}
	return b, nil
}

func makeMMC1(ctx board.Context) (*mmc1, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	b := &mmc1{
		Base:  base,
		surom: len(ctx.PRG) == 0x80000,
	}
	b.mapBanks = b.standardBanks
	return b, nil
}

func (b *mmc1) Name() string {
	return "SxROM"
}

func (b *mmc1) String() string {
	return fmt.Sprintf("%s [%s, %s] control=%05b chr0=%d chr1=%d prg=%d", b.Name(), b.PRG, b.CHR,
		b.control, b.chr0, b.chr1, b.prg&0x0f)
}

func (b *mmc1) StateID() state.ID {
	return mmc1ID
}

func (b *mmc1) Reset(hard bool) {
	b.ResetBase(hard)
	b.CPUMap.MapWrite(0x8000, 0xffff, decoder.WriteFunc(b.write))
	if b.WRAM != nil {
		b.CPUMap.Map(0x6000, 0x7fff, decoder.ReadFunc(b.readWRAM), decoder.WriteFunc(b.writeWRAM))
	}

	b.written = false
	b.shift = 0
	b.count = 0

	if hard {
		b.control = 0x0c
		b.chr0 = 0
		b.chr1 = 0
		b.prg = 0
	} else {
		b.control |= 0x0c
	}
	b.mapBanks()
}

// WRAM is enabled when bit 4 of the PRG register is clear
func (b *mmc1) wramEnabled() bool {
	return b.prg&0x10 == 0
}

func (b *mmc1) readWRAM(addr uint16) uint8 {
	if !b.wramEnabled() {
		return uint8(addr >> 8)
	}
	return b.WRKBanks.Read(addr)
}

func (b *mmc1) writeWRAM(addr uint16, data uint8) {
	if b.wramEnabled() {
		b.WRKBanks.Write(addr, data)
	}
}

func (b *mmc1) write(addr uint16, data uint8) {
	now := b.CPU().Cycles()
	consecutive := b.written && now-b.lastWrite <= b.CPU().ClockDivider()
	b.lastWrite = now
	b.written = true

	if data&0x80 == 0x80 {
		b.shift = 0
		b.count = 0
		b.control |= 0x0c
		b.mapBanks()
		return
	}

	if consecutive {
		return
	}

	b.shift |= (data & 0x01) << b.count
	b.count++
	if b.count < 5 {
		return
	}

	switch addr & 0xe000 {
	case 0x8000:
		b.control = b.shift
	case 0xa000:
		b.chr0 = b.shift
	case 0xc000:
		b.chr1 = b.shift
	case 0xe000:
		b.prg = b.shift
	}

	b.shift = 0
	b.count = 0
	b.mapBanks()
}

func (b *mmc1) mapMirroring() {
	switch b.control & 0x03 {
	case 0:
		b.SetMirroring(bus.SingleScreenA)
	case 1:
		b.SetMirroring(bus.SingleScreenB)
	case 2:
		b.SetMirroring(bus.Vertical)
	case 3:
		b.SetMirroring(bus.Horizontal)
	}
}

// mapPRG maps 256K of PRG with the PRG register. the outer argument is the
// number of the 16K bank at the start of the 256K
func (b *mmc1) mapPRG(outer int) {
	bank := int(b.prg & 0x0f)

	switch (b.control >> 2) & 0x03 {
	case 0, 1:
		b.PRGBanks.Swap(banks.Size32K, 0x8000, (outer+bank)>>1)
	case 2:
		b.PRGBanks.Swap(banks.Size16K, 0x8000, outer)
		b.PRGBanks.Swap(banks.Size16K, 0xc000, outer+bank)
	case 3:
		b.PRGBanks.Swap(banks.Size16K, 0x8000, outer+bank)
		b.PRGBanks.Swap(banks.Size16K, 0xc000, outer+0x0f)
	}
}

func (b *mmc1) mapCHR() {
	if b.control&0x10 == 0 {
		b.CHRBanks.Swap(banks.Size8K, 0x0000, int(b.chr0>>1))
	} else {
		b.CHRBanks.Swap(banks.Size4K, 0x0000, int(b.chr0))
		b.CHRBanks.Swap(banks.Size4K, 0x1000, int(b.chr1))
	}
}

func (b *mmc1) standardBanks() {
	b.mapMirroring()

	var outer int
	if b.surom && b.chr0&0x10 == 0x10 {
		outer = 0x10
	}
	b.mapPRG(outer)

	if b.surom {
		// the upper CHR bits are used for PRG. there is only 8K of CHR-RAM
		b.CHRBanks.Swap(banks.Size8K, 0x0000, 0)
		return
	}
	b.mapCHR()
}

func (b *mmc1) saveRegisters(s *state.Saver) {
	s.Begin(mmc1RegID)
	s.Write8(b.shift)
	s.Write8(b.count)
	s.Write8(b.control)
	s.Write8(b.chr0)
	s.Write8(b.chr1)
	s.Write8(b.prg)
	s.End()
}

func (b *mmc1) loadRegisters(l *state.Loader, id state.ID) bool {
	if !id.SameTag(mmc1RegID) {
		return false
	}
	b.shift = l.Read8()
	b.count = l.Read8() % 5
	b.control = l.Read8()
	b.chr0 = l.Read8()
	b.chr1 = l.Read8()
	b.prg = l.Read8()
	b.written = false
	return true
}

func (b *mmc1) SaveState(s *state.Saver) {
	b.SaveBase(s)
	b.saveRegisters(s)
}

func (b *mmc1) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		b.loadRegisters(l, id)
	})
}
