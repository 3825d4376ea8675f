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
	"encoding/binary"
	"io"
)

// the number of bytes in a chunk header
const headerLen = 8

// Saver writes chunks to an in-memory buffer.
type Saver struct {
	buf []byte

	// offsets of the length fields of chunks that have not been closed
	open []int
}

// NewSaver is the preferred method of initialisation for the Saver type.
func NewSaver() *Saver {
	return &Saver{
		buf: make([]byte, 0, 4096),
	}
}

// Begin starts a new chunk. Every call to Begin() must be matched by a call
// to End().
func (s *Saver) Begin(id ID) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, uint32(id))
	s.open = append(s.open, len(s.buf))
	s.buf = binary.LittleEndian.AppendUint32(s.buf, 0)
}

// End closes the most recent chunk opened with Begin(). Panics if there is no
// open chunk.
func (s *Saver) End() {
	if len(s.open) == 0 {
		panic("state: End() without Begin()")
	}
	at := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	binary.LittleEndian.PutUint32(s.buf[at:], uint32(len(s.buf)-at-4))
}

// Depth returns the number of open chunks.
func (s *Saver) Depth() int {
	return len(s.open)
}

// Write8 adds a byte to the current chunk.
func (s *Saver) Write8(v uint8) {
	s.buf = append(s.buf, v)
}

// Write16 adds a little-endian 16 bit value to the current chunk.
func (s *Saver) Write16(v uint16) {
	s.buf = binary.LittleEndian.AppendUint16(s.buf, v)
}

// Write32 adds a little-endian 32 bit value to the current chunk.
func (s *Saver) Write32(v uint32) {
	s.buf = binary.LittleEndian.AppendUint32(s.buf, v)
}

// Write64 adds a little-endian 64 bit value to the current chunk.
func (s *Saver) Write64(v uint64) {
	s.buf = binary.LittleEndian.AppendUint64(s.buf, v)
}

// WriteBool adds a boolean to the current chunk as a single byte.
func (s *Saver) WriteBool(v bool) {
	if v {
		s.buf = append(s.buf, 1)
	} else {
		s.buf = append(s.buf, 0)
	}
}

// WriteBytes adds the data to the current chunk. The length of the data is
// not recorded.
func (s *Saver) WriteBytes(data []byte) {
	s.buf = append(s.buf, data...)
}

// Bytes returns the saved data. Panics if any chunks are still open.
func (s *Saver) Bytes() []byte {
	if len(s.open) > 0 {
		panic("state: Bytes() with unbalanced Begin()")
	}
	return s.buf
}

// WriteTo writes the saved data to w. Panics if any chunks are still open.
// Implements the io.WriterTo interface.
func (s *Saver) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}
