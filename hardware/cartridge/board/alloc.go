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
	"github.com/jetsetilly/gophernes/curated"
)

// AllocationError is returned when memory for a board cannot be allocated.
// This is distinct from an unsupported board.
const AllocationError = "board: cannot allocate %s (%d bytes)"

// the largest RAM that a board is allowed to allocate. this is the largest
// RAM size that can be described by a NES 2.0 header
const maxRAM = 0x100000

// allocate memory for a named RAM region. sizes outside the range that a
// header can describe are the allocation failure
func allocate(name string, size int) ([]uint8, error) {
	if size < 0 || size > maxRAM {
		return nil, curated.Errorf(AllocationError, name, size)
	}
	return make([]uint8, size), nil
}
