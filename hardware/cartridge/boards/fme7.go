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
	fme7ID    = state.NewID("FM7", 1)
	fme7RegID = state.NewID("CMD", 1)
	fme7IRQID = state.NewID("IRQ", 1)
)

// fme7 is the Sunsoft FME-7. registers are written by writing the register
// number to $8000 and then the value to $a000:
//
//	$0-$7	1K CHR banks
//	$8	8K bank at $6000 (bit 6 selects RAM, bit 7 enables RAM)
//	$9-$b	8K PRG banks at $8000, $a000 and $c000
//	$c	mirroring
//	$d	IRQ control (bit 0 enables the interrupt, bit 7 enables counting)
//	$e-$f	IRQ counter low and high bytes
//
// the IRQ counter is decremented on every CPU cycle and raises an interrupt
// when it wraps from zero to $ffff. writing to the IRQ control register
// acknowledges any pending interrupt.
//
// the 5B audio registers at $c000 and $e000 are ignored.
type fme7 struct {
	*board.Base

	command uint8
	regs    [16]uint8

	counter timer.Counter
	timer   *timer.M2
}

func newFME7(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	b := &fme7{
		Base: base,
		counter: timer.Counter{
			Underflow: true,
		},
	}
	b.timer = timer.NewM2(ctx.CPU, &b.counter, 1)
	return b, nil
}

func (b *fme7) Name() string {
	return "FME-7"
}

func (b *fme7) String() string {
	return fmt.Sprintf("%s [%s, %s] command=%#x irq: %s", b.Name(), b.PRG, b.CHR, b.command, &b.counter)
}

func (b *fme7) StateID() state.ID {
	return fme7ID
}

func (b *fme7) Reset(hard bool) {
	b.ResetBase(hard)

	b.CPUMap.Map(0x6000, 0x7fff, decoder.ReadFunc(b.readWRK), decoder.WriteFunc(b.writeWRK))
	b.CPUMap.MapWrite(0x8000, 0x9fff, decoder.WriteFunc(func(_ uint16, data uint8) {
		b.command = data & 0x0f
	}))
	b.CPUMap.MapWrite(0xa000, 0xbfff, decoder.WriteFunc(b.writeParameter))

	b.timer.Reset(hard, true)

	if hard {
		b.CPU().ClearIRQ()
		b.command = 0
		b.regs = [16]uint8{}
		b.regs[0x0c] = b.headerMirroring()
		for r := uint8(0); r <= 0x0c; r++ {
			b.apply(r)
		}
	}
}

// the value of the mirroring register that matches the current mirroring
func (b *fme7) headerMirroring() uint8 {
	switch b.Mirroring() {
	case bus.Horizontal:
		return 1
	case bus.SingleScreenA:
		return 2
	case bus.SingleScreenB:
		return 3
	}
	return 0
}

// Update implements the board.Clocked interface.
func (b *fme7) Update() {
	b.timer.Update()
}

func (b *fme7) writeParameter(_ uint16, data uint8) {
	r := b.command
	b.regs[r] = data

	switch r {
	case 0x0d:
		b.timer.Update()
		b.counter.Counting = data&0x80 == 0x80
		b.counter.IRQEnabled = data&0x01 == 0x01
		b.counter.ClearIRQ()
		b.timer.ClearIRQ()
	case 0x0e:
		b.timer.Update()
		b.counter.Count = b.counter.Count&0xff00 | uint16(data)
	case 0x0f:
		b.timer.Update()
		b.counter.Count = b.counter.Count&0x00ff | uint16(data)<<8
	default:
		b.apply(r)
	}
}

// apply the value of a banking register
func (b *fme7) apply(r uint8) {
	v := b.regs[r]

	switch {
	case r <= 0x07:
		b.CHRBanks.Swap(banks.Size1K, uint16(r)<<10, int(v))
	case r == 0x08:
		bank := int(v & 0x3f)
		if v&0x40 == 0x40 && b.WRAM != nil {
			b.WRKBanks.SwapSource(b.WRAM, banks.Size8K, 0x6000, bank)
		} else {
			b.WRKBanks.SwapSource(b.PRG, banks.Size8K, 0x6000, bank)
		}
	case r <= 0x0b:
		b.PRGBanks.Swap(banks.Size8K, 0x8000+uint16(r-0x09)<<13, int(v&0x3f))
		b.PRGBanks.Swap(banks.Size8K, 0xe000, -1)
	case r == 0x0c:
		switch v & 0x03 {
		case 0:
			b.SetMirroring(bus.Vertical)
		case 1:
			b.SetMirroring(bus.Horizontal)
		case 2:
			b.SetMirroring(bus.SingleScreenA)
		case 3:
			b.SetMirroring(bus.SingleScreenB)
		}
	}
}

// $6000 is mapped to ROM or RAM depending on bit 6 of register 8. RAM can be
// disabled with bit 7
func (b *fme7) readWRK(addr uint16) uint8 {
	v := b.regs[0x08]
	if v&0x40 == 0x40 && (v&0x80 == 0 || b.WRAM == nil) {
		return uint8(addr >> 8)
	}
	return b.WRKBanks.Read(addr)
}

func (b *fme7) writeWRK(addr uint16, data uint8) {
	if b.regs[0x08]&0xc0 == 0xc0 {
		b.WRKBanks.Write(addr, data)
	}
}

func (b *fme7) MappedBanks() string {
	m := b.Base.MappedBanks()
	if b.WRAM == nil {
		m = fmt.Sprintf("%s6000-7fff %s\n", m, b.WRKBanks.Mappings()[0].Source.Name)
	}
	return m
}

func (b *fme7) SaveState(s *state.Saver) {
	b.timer.Update()

	b.SaveBase(s)

	s.Begin(fme7RegID)
	s.Write8(b.command)
	s.WriteBytes(b.regs[:])
	s.End()

	s.Begin(fme7IRQID)
	b.counter.SaveState(s)
	b.timer.SaveState(s)
	s.End()
}

func (b *fme7) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		switch {
		case id.SameTag(fme7RegID):
			b.command = l.Read8() & 0x0f
			l.ReadBytes(b.regs[:])
		case id.SameTag(fme7IRQID):
			b.counter.LoadState(l)
			b.timer.LoadState(l)
		}
	})

	if b.counter.Pending {
		b.CPU().AssertIRQ()
	}
}
