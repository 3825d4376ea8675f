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

package state

import (
	"fmt"

	"github.com/jetsetilly/gophernes/assert"
)

// ID identifies a chunk. The value is the little-endian encoding of the
// three tag characters and the version number.
type ID uint32

// NoChunk is returned by Loader.Begin() when there are no more chunks.
const NoChunk ID = 0

// NewID creates an ID from a three character tag and a version number.
func NewID(tag string, version uint8) ID {
	assert.Check(len(tag) == 3, "state: chunk tag must be three characters (%q)", tag)

	var t [3]byte
	copy(t[:], tag)
	return ID(uint32(t[0]) | uint32(t[1])<<8 | uint32(t[2])<<16 | uint32(version)<<24)
}

// Tag returns the three character tag of the ID.
func (id ID) Tag() string {
	return string([]byte{byte(id), byte(id >> 8), byte(id >> 16)})
}

// Version returns the version number of the ID.
func (id ID) Version() uint8 {
	return uint8(id >> 24)
}

// SameTag returns true if the IDs have the same tag. The version is ignored.
func (id ID) SameTag(other ID) bool {
	return id&0x00ffffff == other&0x00ffffff
}

// Printable returns true if all three tag characters are printable ASCII.
func (id ID) Printable() bool {
	for _, c := range []byte{byte(id), byte(id >> 8), byte(id >> 16)} {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

func (id ID) String() string {
	if id == NoChunk {
		return "no chunk"
	}
	if !id.Printable() {
		return fmt.Sprintf("%#08x", uint32(id))
	}
	return fmt.Sprintf("%s.%d", id.Tag(), id.Version())
}
