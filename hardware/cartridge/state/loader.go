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
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/curated"
)

// MalformedData is the pattern of the error returned by Err().
const MalformedData = "state: malformed data (%s)"

// Loader reads chunks from data created by a Saver.
//
// Loading never fails. Malformed data is dealt with by treating truncated
// values as zero and by clamping chunk lengths to the enclosing chunk. The
// first problem found is available from Err().
type Loader struct {
	data []byte
	pos  int

	// end offsets of the chunks that have been opened with Begin()
	ends []int

	err error
}

// NewLoader is the preferred method of initialisation for the Loader type.
// The data is not copied.
func NewLoader(data []byte) *Loader {
	return &Loader{data: data}
}

// ReadLoader creates a Loader from the contents of an io.Reader.
func ReadLoader(r io.Reader) (*Loader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}
	return NewLoader(data), nil
}

// Err returns the first problem found in the data.
func (l *Loader) Err() error {
	return l.err
}

func (l *Loader) fault(format string, args ...any) {
	if l.err == nil {
		l.err = curated.Errorf(MalformedData, fmt.Sprintf(format, args...))
	}
}

// the end of the current scope. either the end of the current chunk or the
// end of the data
func (l *Loader) scope() int {
	if len(l.ends) == 0 {
		return len(l.data)
	}
	return l.ends[len(l.ends)-1]
}

// Depth returns the number of chunks currently open.
func (l *Loader) Depth() int {
	return len(l.ends)
}

// Remaining returns the number of unread bytes in the current scope.
func (l *Loader) Remaining() int {
	return l.scope() - l.pos
}

// Peek returns the ID of the next chunk without opening it. Returns NoChunk
// if there is no complete chunk header in the current scope.
func (l *Loader) Peek() ID {
	if l.scope()-l.pos < headerLen {
		return NoChunk
	}
	return ID(binary.LittleEndian.Uint32(l.data[l.pos:]))
}

// Begin opens the next chunk in the current scope and returns its ID. If
// there are no more chunks in the scope then NoChunk is returned and End()
// should not be called.
//
// Trailing bytes too short to be a chunk header are skipped.
func (l *Loader) Begin() ID {
	end := l.scope()

	if end-l.pos < headerLen {
		if end > l.pos {
			l.fault("%d trailing bytes at offset %d", end-l.pos, l.pos)
			l.pos = end
		}
		return NoChunk
	}

	id := ID(binary.LittleEndian.Uint32(l.data[l.pos:]))
	length := int(binary.LittleEndian.Uint32(l.data[l.pos+4:]))
	l.pos += headerLen

	if id == NoChunk {
		l.fault("zero chunk ID at offset %d", l.pos-headerLen)
		l.pos = end
		return NoChunk
	}

	if length < 0 || length > end-l.pos {
		l.fault("chunk %s length (%d) exceeds available data (%d)", id, length, end-l.pos)
		length = end - l.pos
	}

	l.ends = append(l.ends, l.pos+length)

	return id
}

// End closes the current chunk. Any unread data in the chunk is skipped.
// Panics if there is no open chunk.
func (l *Loader) End() {
	if len(l.ends) == 0 {
		panic("state: End() without Begin()")
	}
	l.pos = l.ends[len(l.ends)-1]
	l.ends = l.ends[:len(l.ends)-1]
}

// Chunks calls fn for every chunk in the current scope. The chunk is open when
// fn is called and is closed when fn returns.
func (l *Loader) Chunks(fn func(id ID)) {
	for id := l.Begin(); id != NoChunk; id = l.Begin() {
		fn(id)
		l.End()
	}
}

// next returns the next n bytes of the current scope. if there are fewer than
// n bytes then nil is returned and the read position moves to the end of the
// scope
func (l *Loader) next(n int) []byte {
	end := l.scope()
	if end-l.pos < n {
		l.pos = end
		return nil
	}
	b := l.data[l.pos : l.pos+n]
	l.pos += n
	return b
}

// Read8 reads a byte from the current chunk.
func (l *Loader) Read8() uint8 {
	if b := l.next(1); b != nil {
		return b[0]
	}
	return 0
}

// Read16 reads a little-endian 16 bit value from the current chunk.
func (l *Loader) Read16() uint16 {
	if b := l.next(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

// Read32 reads a little-endian 32 bit value from the current chunk.
func (l *Loader) Read32() uint32 {
	if b := l.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

// Read64 reads a little-endian 64 bit value from the current chunk.
func (l *Loader) Read64() uint64 {
	if b := l.next(8); b != nil {
		return binary.LittleEndian.Uint64(b)
	}
	return 0
}

// ReadBool reads a boolean from the current chunk. Any non-zero value is true.
func (l *Loader) ReadBool() bool {
	return l.Read8() != 0
}

// ReadBytes fills data from the current chunk. If the chunk is shorter than
// data then the available bytes are copied and the rest of data is zeroed.
// Returns the number of bytes copied from the chunk.
func (l *Loader) ReadBytes(data []byte) int {
	end := l.scope()
	n := copy(data, l.data[l.pos:end])
	clear(data[n:])
	l.pos += n
	return n
}
