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

// discrete logic boards have a single register that is written to by writing
// anywhere in ROM
var regID = state.NewID("REG", 1)

var (
	uxromID = state.NewID("UXR", 1)
	cnromID = state.NewID("CNR", 1)
	axromID = state.NewID("AXR", 1)
)

// the bus conflict behaviour of a discrete logic board
type conflicts int

const (
	// use the BusConflicts preference
	conflictsPreference conflicts = iota
	conflictsNever
	conflictsAlways
)

// busConflict returns the value that results from the CPU writing data to a
// ROM address. with bus conflicts the ROM and the CPU both drive the data bus
// and the result is the AND of the two values
func busConflict(b *board.Base, c conflicts, addr uint16, data uint8) uint8 {
	switch c {
	case conflictsNever:
		return data
	case conflictsPreference:
		if !b.Env().Prefs.Cartridge.BusConflicts.Get().(bool) {
			return data
		}
	}
	return data & b.PRGBanks.Read(addr)
}

// submapperConflicts interprets the NES 2.0 submapper for UxROM and CNROM
func submapperConflicts(submapper int) conflicts {
	switch submapper {
	case 1:
		return conflictsNever
	case 2:
		return conflictsAlways
	}
	return conflictsPreference
}

// uxrom switches 16K of PRG at $8000. the last 16K of PRG is fixed at $c000
type uxrom struct {
	*board.Base
	conflicts conflicts
	bank      uint8
}

func newUxROM(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	return &uxrom{
		Base:      base,
		conflicts: submapperConflicts(ctx.Submapper),
	}, nil
}

func (b *uxrom) Name() string {
	return "UxROM"
}

func (b *uxrom) String() string {
	return fmt.Sprintf("%s [%s, %s] bank=%d", b.Name(), b.PRG, b.CHR, b.bank)
}

func (b *uxrom) StateID() state.ID {
	return uxromID
}

func (b *uxrom) Reset(hard bool) {
	b.ResetBase(hard)
	b.CPUMap.MapWrite(0x8000, 0xffff, decoder.WriteFunc(b.write))
	if hard {
		b.bank = 0
		b.mapBanks()
	}
}

func (b *uxrom) write(addr uint16, data uint8) {
	b.bank = busConflict(b.Base, b.conflicts, addr, data)
	b.mapBanks()
}

func (b *uxrom) mapBanks() {
	b.PRGBanks.Swap(banks.Size16K, 0x8000, int(b.bank))
	b.PRGBanks.Swap(banks.Size16K, 0xc000, -1)
}

func (b *uxrom) SaveState(s *state.Saver) {
	b.SaveBase(s)
	s.Begin(regID)
	s.Write8(b.bank)
	s.End()
}

func (b *uxrom) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		if id.SameTag(regID) {
			b.bank = l.Read8()
		}
	})
}

// cnrom switches 8K of CHR. PRG is fixed
type cnrom struct {
	*board.Base
	conflicts conflicts
	bank      uint8
}

func newCNROM(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	return &cnrom{
		Base:      base,
		conflicts: submapperConflicts(ctx.Submapper),
	}, nil
}

func (b *cnrom) Name() string {
	return "CNROM"
}

func (b *cnrom) String() string {
	return fmt.Sprintf("%s [%s, %s] bank=%d", b.Name(), b.PRG, b.CHR, b.bank)
}

func (b *cnrom) StateID() state.ID {
	return cnromID
}

func (b *cnrom) Reset(hard bool) {
	b.ResetBase(hard)
	b.CPUMap.MapWrite(0x8000, 0xffff, decoder.WriteFunc(b.write))
	if hard {
		b.bank = 0
	}
}

func (b *cnrom) write(addr uint16, data uint8) {
	b.bank = busConflict(b.Base, b.conflicts, addr, data)
	b.CHRBanks.Swap(banks.Size8K, 0x0000, int(b.bank))
}

func (b *cnrom) SaveState(s *state.Saver) {
	b.SaveBase(s)
	s.Begin(regID)
	s.Write8(b.bank)
	s.End()
}

func (b *cnrom) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		if id.SameTag(regID) {
			b.bank = l.Read8()
		}
	})
}

// axrom switches 32K of PRG and selects one of the two nametables for single
// screen mirroring
type axrom struct {
	*board.Base
	conflicts conflicts
	value     uint8
}

func newAxROM(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}

	// unlike UxROM and CNROM, most AxROM boards do not have bus conflicts
	c := conflictsNever
	if ctx.Submapper == 2 {
		c = conflictsAlways
	}

	return &axrom{
		Base:      base,
		conflicts: c,
	}, nil
}

func (b *axrom) Name() string {
	return "AxROM"
}

func (b *axrom) String() string {
	return fmt.Sprintf("%s [%s, %s] bank=%d %s", b.Name(), b.PRG, b.CHR, b.value&0x07, b.Mirroring())
}

func (b *axrom) StateID() state.ID {
	return axromID
}

func (b *axrom) Reset(hard bool) {
	b.ResetBase(hard)
	b.CPUMap.MapWrite(0x8000, 0xffff, decoder.WriteFunc(b.write))
	if hard {
		b.value = 0
		b.mapBanks()
	}
}

func (b *axrom) write(addr uint16, data uint8) {
	b.value = busConflict(b.Base, b.conflicts, addr, data)
	b.mapBanks()
}

func (b *axrom) mapBanks() {
	b.PRGBanks.Swap(banks.Size32K, 0x8000, int(b.value&0x07))
	if b.value&0x10 == 0 {
		b.SetMirroring(bus.SingleScreenA)
	} else {
		b.SetMirroring(bus.SingleScreenB)
	}
}

func (b *axrom) SaveState(s *state.Saver) {
	b.SaveBase(s)
	s.Begin(regID)
	s.Write8(b.value)
	s.End()
}

func (b *axrom) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) {
			return
		}
		if id.SameTag(regID) {
			b.value = l.Read8()
		}
	})
}
