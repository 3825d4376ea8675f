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

package cartridge

import (
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

const ejectedName = "ejected"
const ejectedHash = "nohash"

var ejectedID = state.NewID("EJT", 1)

// ejected implements the board.Board interface. it is used when there is no
// cartridge attached
type ejected struct{}

func (ejected) ID() int {
	return -1
}

func (ejected) Name() string {
	return ejectedName
}

func (ejected) String() string {
	return ejectedName
}

func (ejected) StateID() state.ID {
	return ejectedID
}

func (ejected) Reset(_ bool) {
}

func (ejected) SaveState(_ *state.Saver) {
}

func (ejected) LoadState(_ *state.Loader, _ state.ID) {
}

func (ejected) Sync(_ bus.Event, _ bus.Controllers) {
}

// open bus
func (ejected) ReadCPU(addr uint16) uint8 {
	return uint8(addr >> 8)
}

func (ejected) PeekCPU(addr uint16) uint8 {
	return uint8(addr >> 8)
}

func (ejected) WriteCPU(_ uint16, _ uint8) {
}

func (ejected) ReadCHR(_ uint16) uint8 {
	return 0
}

func (ejected) WriteCHR(_ uint16, _ uint8) {
}

func (ejected) Mirroring() bus.Mirroring {
	return bus.Horizontal
}

func (ejected) MappedBanks() string {
	return ""
}
