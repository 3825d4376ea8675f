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

package banks

import (
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// SaveState writes the page table of the space. The contents of the source
// regions are not saved.
func (s *Space) SaveState(sv *state.Saver) {
	sv.Write8(uint8(len(s.pages)))
	for _, p := range s.pages {
		sv.Write8(uint8(p.source))
		sv.Write32(uint32(p.offset))
	}
}

// LoadState restores a page table written by SaveState(). Entries that don't
// fit the space or its sources are ignored, leaving the current mapping for
// that page in place.
func (s *Space) LoadState(l *state.Loader) {
	n := int(l.Read8())
	for i := 0; i < n; i++ {
		source := int(l.Read8())
		offset := int(l.Read32())

		if i >= len(s.pages) || source >= len(s.sources) {
			continue
		}

		size := len(s.sources[source].Data)
		if size > 0 && (offset >= size || offset%min(s.pageSize, size) != 0) {
			continue
		}

		s.pages[i] = page{source: source, offset: offset}
	}
}
