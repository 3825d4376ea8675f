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

package preferences

import (
	"github.com/jetsetilly/gophernes/prefs"
)

// Cartridge preferences apply to all cartridge boards.
type Cartridge struct {
	// the number of PPU cycles that A12 must be low before a rising edge
	// clocks a scanline counter
	A12Filter prefs.Int

	// the initial value of the DIP switches for boards that have them
	DIPSwitches prefs.Int

	// writes to ROM on discrete logic boards are ANDed with the value in ROM
	BusConflicts prefs.Bool
}

func (p *Cartridge) add(dsk *prefs.Disk) error {
	err := dsk.Add("hardware.cartridge.a12filter", &p.A12Filter)
	if err != nil {
		return err
	}
	err = dsk.Add("hardware.cartridge.dipswitches", &p.DIPSwitches)
	if err != nil {
		return err
	}
	err = dsk.Add("hardware.cartridge.busconflicts", &p.BusConflicts)
	if err != nil {
		return err
	}
	return nil
}

// SetDefaults reverts all settings to default values.
func (p *Cartridge) SetDefaults() {
	p.A12Filter.Set(16)
	p.DIPSwitches.Set(4)
	p.BusConflicts.Set(true)
}
