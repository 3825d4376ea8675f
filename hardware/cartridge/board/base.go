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

package board

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gophernes/assert"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge/banks"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/decoder"
)

// BatteryError is returned by LoadBatteryData() when the data is not the same
// size as the battery backed RAM.
const BatteryError = "board: battery data size (%d) does not match RAM size (%d)"

// CHR-RAM size if the context does not specify one
const defaultCHRRAM = banks.Size8K

// Base is the foundation of every board. It owns the memory regions, the bank
// mapping and the decoder tables.
//
// The three address spaces are:
//
//	PRGBanks	$8000 to $ffff in 8K pages
//	WRKBanks	$6000 to $7fff as a single 8K page
//	CHRBanks	$0000 to $1fff in 1K pages
//
// The sources for WRKBanks are WRAM, if there is any, followed by PRG.
type Base struct {
	env *environment.Environment
	cpu bus.CPU
	ppu bus.PPU

	id        int
	submapper int

	// the mirroring specified by the cartridge header
	header bus.Mirroring

	// the current mirroring
	mirroring bus.Mirroring

	PRG  *banks.Region
	CHR  *banks.Region
	WRAM *banks.Region

	PRGBanks *banks.Space
	WRKBanks *banks.Space
	CHRBanks *banks.Space

	// handlers for CPU addresses $4020 to $ffff
	CPUMap *decoder.Table

	// handlers for PPU addresses $0000 to $1fff
	CHRMap *decoder.Table
}

// NewBase is the preferred method of initialisation for the Base type. The
// only error returned is an AllocationError.
func NewBase(ctx Context) (*Base, error) {
	assert.Check(ctx.Env != nil, "board: context has no environment")
	assert.Check(ctx.CPU != nil, "board: context has no CPU")
	assert.Check(ctx.PPU != nil, "board: context has no PPU")

	b := &Base{
		env:       ctx.Env,
		cpu:       ctx.CPU,
		ppu:       ctx.PPU,
		id:        ctx.Mapper,
		submapper: ctx.Submapper,
		header:    ctx.Mirroring,
		mirroring: ctx.Mirroring,
	}

	b.PRG = banks.NewROM("PRG-ROM", ctx.PRG)

	if len(ctx.CHR) > 0 {
		b.CHR = banks.NewROM("CHR-ROM", ctx.CHR)
	} else {
		size := ctx.CHRRAMSize
		if size == 0 {
			size = defaultCHRRAM
		}
		data, err := allocate("CHR-RAM", size)
		if err != nil {
			return nil, err
		}
		b.CHR = banks.NewRAM("CHR-RAM", data, false)
	}

	wrk := []*banks.Region{b.PRG}
	if ctx.WRAMSize > 0 {
		data, err := allocate("WRAM", ctx.WRAMSize)
		if err != nil {
			return nil, err
		}
		b.WRAM = banks.NewRAM("WRAM", data, ctx.Battery)
		wrk = []*banks.Region{b.WRAM, b.PRG}
	}

	b.PRGBanks = banks.NewSpace(0x8000, banks.Size32K, banks.Size8K, b.PRG)
	b.WRKBanks = banks.NewSpace(0x6000, banks.Size8K, banks.Size8K, wrk...)
	b.CHRBanks = banks.NewSpace(0x0000, banks.Size8K, banks.Size1K, b.CHR)

	b.CPUMap = decoder.NewTable(0x4020, 0xffff)
	b.CHRMap = decoder.NewTable(0x0000, 0x1fff)

	return b, nil
}

// ID implements the Board interface.
func (b *Base) ID() int {
	return b.id
}

// Submapper returns the NES 2.0 submapper number.
func (b *Base) Submapper() int {
	return b.submapper
}

// Env returns the environment the board was created in.
func (b *Base) Env() *environment.Environment {
	return b.env
}

// CPU returns the CPU the board is plugged into.
func (b *Base) CPU() bus.CPU {
	return b.cpu
}

// PPU returns the PPU the board is plugged into.
func (b *Base) PPU() bus.PPU {
	return b.ppu
}

// ResetBase installs the default handlers. On a hard reset the default bank
// mapping is restored and volatile memory is cleared or randomised.
//
// The default handlers map PRGBanks at $8000 and CHRBanks at $0000. WRKBanks
// is mapped at $6000 if the board has WRAM. Boards should call ResetBase()
// before installing their own handlers.
func (b *Base) ResetBase(hard bool) {
	b.CPUMap.Clear()
	b.CHRMap.Clear()

	b.CPUMap.Map(0x8000, 0xffff, b.PRGBanks, decoder.Discard)
	if b.WRAM != nil {
		b.CPUMap.Map(0x6000, 0x7fff, b.WRKBanks, decoder.WriteFunc(b.writeWRK))
	}
	b.CHRMap.Map(0x0000, 0x1fff, b.CHRBanks, decoder.WriteFunc(b.writeCHR))

	if !hard {
		return
	}

	b.PRGBanks.Swap(banks.Size32K, 0x8000, 0)
	b.WRKBanks.Swap(banks.Size8K, 0x6000, 0)
	b.CHRBanks.Swap(banks.Size8K, 0x0000, 0)
	b.SetMirroring(b.header)

	if b.WRAM != nil && !b.WRAM.Battery {
		b.volatile(b.WRAM)
	}
	if b.CHR.Writable {
		b.volatile(b.CHR)
	}
}

// clear or randomise a RAM region depending on the RandomState preference
func (b *Base) volatile(r *banks.Region) {
	if b.env.Prefs.RandomState.Get().(bool) {
		b.env.Random.Fill(r.Data)
		return
	}
	r.Clear()
}

func (b *Base) writeWRK(addr uint16, data uint8) {
	b.WRKBanks.Write(addr, data)
}

func (b *Base) writeCHR(addr uint16, data uint8) {
	b.CHRBanks.Write(addr, data)
}

// SetMirroring changes the nametable mirroring. The change is ignored if the
// cartridge header specified four screen mirroring.
func (b *Base) SetMirroring(m bus.Mirroring) {
	if b.header == bus.FourScreen {
		m = bus.FourScreen
	}
	b.mirroring = m
	b.ppu.SetMirroring(m)
}

// Mirroring implements the Board interface.
func (b *Base) Mirroring() bus.Mirroring {
	return b.mirroring
}

// ReadCPU implements the Board interface.
func (b *Base) ReadCPU(addr uint16) uint8 {
	return b.CPUMap.Read(addr)
}

// PeekCPU implements the Board interface.
func (b *Base) PeekCPU(addr uint16) uint8 {
	return b.CPUMap.Peek(addr)
}

// WriteCPU implements the Board interface.
func (b *Base) WriteCPU(addr uint16, data uint8) {
	b.CPUMap.Write(addr, data)
}

// ReadCHR implements the Board interface.
func (b *Base) ReadCHR(addr uint16) uint8 {
	return b.CHRMap.Read(addr & 0x1fff)
}

// WriteCHR implements the Board interface.
func (b *Base) WriteCHR(addr uint16, data uint8) {
	b.CHRMap.Write(addr&0x1fff, data)
}

// Sync implements the Board interface. Most boards do nothing.
func (b *Base) Sync(_ bus.Event, _ bus.Controllers) {
}

// MappedBanks implements the Board interface.
func (b *Base) MappedBanks() string {
	s := strings.Builder{}
	describe(&s, b.PRGBanks)
	if b.WRAM != nil {
		describe(&s, b.WRKBanks)
	}
	describe(&s, b.CHRBanks)
	return s.String()
}

func describe(s *strings.Builder, sp *banks.Space) {
	for _, m := range sp.Mappings() {
		fmt.Fprintf(s, "%04x-%04x %s %#x\n", m.Address, int(m.Address)+m.Size-1, m.Source.Name, m.Offset)
	}
}

// BatteryData implements the BatteryRAM interface.
func (b *Base) BatteryData() []uint8 {
	if b.WRAM == nil || !b.WRAM.Battery {
		return nil
	}
	return b.WRAM.Data
}

// LoadBatteryData implements the BatteryRAM interface.
func (b *Base) LoadBatteryData(data []uint8) error {
	ram := b.BatteryData()
	if ram == nil {
		return curated.Errorf(BatteryError, len(data), 0)
	}
	copy(ram, data)
	if len(data) != len(ram) {
		return curated.Errorf(BatteryError, len(data), len(ram))
	}
	return nil
}
