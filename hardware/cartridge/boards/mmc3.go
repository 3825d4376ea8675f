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
	"github.com/jetsetilly/gophernes/hardware/cartridge/timer"
)

var (
	mmc3ID    = state.NewID("MC3", 1)
	mmc3RegID = state.NewID("BRG", 1)
	mmc3IRQID = state.NewID("IRQ", 1)
)

// scanlineCounter is the MMC3 IRQ counter. it is clocked by the A12 timer
// once per scanline when the PPU is rendering.
//
// when the counter is zero or a reload has been requested, the counter is
// loaded from the latch. otherwise it is decremented. an interrupt is raised
// if the counter is zero after being clocked
type scanlineCounter struct {
	count   uint8
	latch   uint8
	reload  bool
	enabled bool
	pending bool
}

func (c *scanlineCounter) String() string {
	return fmt.Sprintf("count=%d latch=%d enabled=%v pending=%v", c.count, c.latch, c.enabled, c.pending)
}

func (c *scanlineCounter) Reset(hard bool) {
	if hard {
		*c = scanlineCounter{}
	}
}

func (c *scanlineCounter) Clock() bool {
	if c.count == 0 || c.reload {
		c.count = c.latch
		c.reload = false
	} else {
		c.count--
	}

	if c.count == 0 && c.enabled && !c.pending {
		c.pending = true
		return true
	}

	return false
}

// mmc3 registers are in pairs. even addresses select the first register of
// the pair and odd addresses select the second:
//
//	$8000-$9fff	bank select / bank data
//	$a000-$bfff	mirroring / WRAM protect
//	$c000-$dfff	IRQ latch / IRQ reload
//	$e000-$ffff	IRQ disable / IRQ enable
type mmc3 struct {
	*board.Base

	bankSelect uint8
	regs       [8]uint8
	mirroring  uint8
	protect    uint8

	counter scanlineCounter
	timer   *timer.A12
}

func newMMC3(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	b := &mmc3{Base: base}
	b.timer = timer.NewA12(ctx.CPU, ctx.PPU, &b.counter, ctx.Env.Prefs.Cartridge.A12Filter.Get().(int))
	return b, nil
}

func (b *mmc3) Name() string {
	return "TxROM"
}

func (b *mmc3) String() string {
	return fmt.Sprintf("%s [%s, %s] select=%08b regs=%v irq: %s", b.Name(), b.PRG, b.CHR,
		b.bankSelect, b.regs, &b.counter)
}

func (b *mmc3) StateID() state.ID {
	return mmc3ID
}

func (b *mmc3) Reset(hard bool) {
	b.ResetBase(hard)

	b.CPUMap.MapWrite(0x8000, 0x9fff, decoder.WriteFunc(b.writeBanking))
	b.CPUMap.MapWrite(0xa000, 0xbfff, decoder.WriteFunc(b.writeMemory))
	b.CPUMap.MapWrite(0xc000, 0xdfff, decoder.WriteFunc(b.writeCounter))
	b.CPUMap.MapWrite(0xe000, 0xffff, decoder.WriteFunc(b.writeIRQ))
	if b.WRAM != nil {
		b.CPUMap.Map(0x6000, 0x7fff, decoder.ReadFunc(b.readWRAM), decoder.WriteFunc(b.writeWRAM))
	}

	b.timer.SetFilter(b.Env().Prefs.Cartridge.A12Filter.Get().(int))
	b.timer.Reset(hard, true)

	if hard {
		b.CPU().ClearIRQ()
		b.bankSelect = 0
		b.regs = [8]uint8{0, 2, 4, 5, 6, 7, 0, 1}
		b.protect = 0
		b.mirroring = 0
		if b.Mirroring() == bus.Horizontal {
			b.mirroring = 1
		}
		b.mapBanks()
	}
}

func (b *mmc3) writeBanking(addr uint16, data uint8) {
	if addr&0x01 == 0 {
		b.bankSelect = data
	} else {
		b.regs[b.bankSelect&0x07] = data
	}
	b.mapBanks()
}

func (b *mmc3) writeMemory(addr uint16, data uint8) {
	if addr&0x01 == 0 {
		b.mirroring = data & 0x01
		b.mapMirroring()
	} else {
		b.protect = data
	}
}

func (b *mmc3) writeCounter(addr uint16, data uint8) {
	if addr&0x01 == 0 {
		b.counter.latch = data
	} else {
		b.counter.count = 0
		b.counter.reload = true
	}
}

func (b *mmc3) writeIRQ(addr uint16, _ uint8) {
	if addr&0x01 == 0 {
		b.counter.enabled = false
		b.counter.pending = false
		b.timer.ClearIRQ()
	} else {
		b.counter.enabled = true
	}
}

func (b *mmc3) mapMirroring() {
	if b.mirroring == 0 {
		b.SetMirroring(bus.Vertical)
	} else {
		b.SetMirroring(bus.Horizontal)
	}
}

// bit 6 of bank select swaps the PRG banks at $8000 and $c000. bit 7 swaps
// the two halves of CHR
func (b *mmc3) mapBanks() {
	r6 := int(b.regs[6] & 0x3f)
	r7 := int(b.regs[7] & 0x3f)
	if b.bankSelect&0x40 == 0 {
		b.PRGBanks.Swap(banks.Size8K, 0x8000, r6)
		b.PRGBanks.Swap(banks.Size8K, 0xc000, -2)
	} else {
		b.PRGBanks.Swap(banks.Size8K, 0x8000, -2)
		b.PRGBanks.Swap(banks.Size8K, 0xc000, r6)
	}
	b.PRGBanks.Swap(banks.Size8K, 0xa000, r7)
	b.PRGBanks.Swap(banks.Size8K, 0xe000, -1)

	var inv uint16
	if b.bankSelect&0x80 == 0x80 {
		inv = 0x1000
	}
	b.CHRBanks.Swap(banks.Size2K, 0x0000^inv, int(b.regs[0]>>1))
	b.CHRBanks.Swap(banks.Size2K, 0x0800^inv, int(b.regs[1]>>1))
	b.CHRBanks.Swap(banks.Size1K, 0x1000^inv, int(b.regs[2]))
	b.CHRBanks.Swap(banks.Size1K, 0x1400^inv, int(b.regs[3]))
	b.CHRBanks.Swap(banks.Size1K, 0x1800^inv, int(b.regs[4]))
	b.CHRBanks.Swap(banks.Size1K, 0x1c00^inv, int(b.regs[5]))
}

// WRAM is enabled by bit 7 of the protect register and write protected by
// bit 6
func (b *mmc3) readWRAM(addr uint16) uint8 {
	if b.protect&0x80 == 0 {
		return uint8(addr >> 8)
	}
	return b.WRKBanks.Read(addr)
}

func (b *mmc3) writeWRAM(addr uint16, data uint8) {
	if b.protect&0xc0 == 0x80 {
		b.WRKBanks.Write(addr, data)
	}
}

func (b *mmc3) SaveState(s *state.Saver) {
	b.SaveBase(s)

	s.Begin(mmc3RegID)
	s.Write8(b.bankSelect)
	s.WriteBytes(b.regs[:])
	s.Write8(b.mirroring)
	s.Write8(b.protect)
	s.End()

	s.Begin(mmc3IRQID)
	s.Write8(b.counter.count)
	s.Write8(b.counter.latch)
	s.WriteBool(b.counter.reload)
	s.WriteBool(b.counter.enabled)
	s.WriteBool(b.counter.pending)
	b.timer.SaveState(s)
	s.End()
}

func (b *mmc3) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		switch {
		case id.SameTag(mmc3RegID):
			b.bankSelect = l.Read8()
			l.ReadBytes(b.regs[:])
			b.mirroring = l.Read8() & 0x01
			b.protect = l.Read8()
		case id.SameTag(mmc3IRQID):
			b.counter.count = l.Read8()
			b.counter.latch = l.Read8()
			b.counter.reload = l.ReadBool()
			b.counter.enabled = l.ReadBool()
			b.counter.pending = l.ReadBool()
			b.timer.LoadState(l)
		}
	})

	if b.counter.pending {
		b.CPU().AssertIRQ()
	}
}
