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
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// chunk IDs used by SaveBase() and LoadBase()
var (
	baseID = state.NewID("BAS", 1)
	prgID  = state.NewID("PRG", 1)
	wrkID  = state.NewID("WRK", 1)
	chrID  = state.NewID("CHR", 1)
	ramID  = state.NewID("RAM", 1)
	vrmID  = state.NewID("VRM", 1)
	mirID  = state.NewID("MIR", 1)
)

// SaveBase writes the bank mapping, the contents of RAM and the current
// mirroring. ROM is never saved.
func (b *Base) SaveBase(s *state.Saver) {
	s.Begin(baseID)

	s.Begin(prgID)
	b.PRGBanks.SaveState(s)
	s.End()

	s.Begin(wrkID)
	b.WRKBanks.SaveState(s)
	s.End()

	s.Begin(chrID)
	b.CHRBanks.SaveState(s)
	s.End()

	if b.WRAM != nil {
		s.Begin(ramID)
		s.WriteBytes(b.WRAM.Data)
		s.End()
	}

	if b.CHR.Writable {
		s.Begin(vrmID)
		s.WriteBytes(b.CHR.Data)
		s.End()
	}

	s.Begin(mirID)
	s.Write8(uint8(b.mirroring))
	s.End()

	s.End()
}

// LoadBase reads the chunk written by SaveBase(). The chunk should already
// have been opened with Loader.Begin() and the ID is the value returned by
// Begin(). Returns false if the chunk was not written by SaveBase(), in which
// case nothing is read.
func (b *Base) LoadBase(l *state.Loader, id state.ID) bool {
	if !id.SameTag(baseID) {
		return false
	}

	l.Chunks(func(id state.ID) {
		switch {
		case id.SameTag(prgID):
			b.PRGBanks.LoadState(l)
		case id.SameTag(wrkID):
			b.WRKBanks.LoadState(l)
		case id.SameTag(chrID):
			b.CHRBanks.LoadState(l)
		case id.SameTag(ramID):
			if b.WRAM != nil {
				l.ReadBytes(b.WRAM.Data)
			}
		case id.SameTag(vrmID):
			if b.CHR.Writable {
				l.ReadBytes(b.CHR.Data)
			}
		case id.SameTag(mirID):
			if m := bus.Mirroring(l.Read8()); m <= bus.FourScreen {
				b.SetMirroring(m)
			}
		}
	})

	return true
}
