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

package decoder

import (
	"fmt"

	"github.com/jetsetilly/gophernes/assert"
)

// Reader handles reads for a range of addresses.
type Reader interface {
	Read(addr uint16) uint8
}

// Writer handles writes for a range of addresses.
type Writer interface {
	Write(addr uint16, data uint8)
}

// Peeker is implemented by readers that can return the value at an address
// without any side effects. Readers that don't implement Peeker are assumed
// to have no side effects.
type Peeker interface {
	Peek(addr uint16) uint8
}

// ReadFunc is an adapter to allow the use of ordinary functions as a Reader.
type ReadFunc func(addr uint16) uint8

// Read implements the Reader interface.
func (f ReadFunc) Read(addr uint16) uint8 {
	return f(addr)
}

// WriteFunc is an adapter to allow the use of ordinary functions as a Writer.
type WriteFunc func(addr uint16, data uint8)

// Write implements the Writer interface.
func (f WriteFunc) Write(addr uint16, data uint8) {
	f(addr, data)
}

// Discard is a Writer that ignores all writes. Useful for removing a write
// handler from part of a range.
var Discard Writer = WriteFunc(func(_ uint16, _ uint8) {})

// OpenBus is a Reader that returns the open bus value for the address.
var OpenBus Reader = ReadFunc(func(addr uint16) uint8 { return uint8(addr >> 8) })

// Table is a lookup table of handlers for a range of addresses.
type Table struct {
	first uint16
	last  uint16

	// the handler for each address is an index into the readers and writers
	// slices. index zero is always the default handler
	read  []uint16
	write []uint16

	readers []Reader
	writers []Writer
}

// NewTable creates a Table covering first to last inclusive.
func NewTable(first uint16, last uint16) *Table {
	assert.Check(first <= last, "decoder: invalid range (%#04x-%#04x)", first, last)

	n := int(last-first) + 1
	t := &Table{
		first: first,
		last:  last,
		read:  make([]uint16, n),
		write: make([]uint16, n),
	}
	t.Clear()

	return t
}

func (t *Table) String() string {
	return fmt.Sprintf("%#04x-%#04x (%d readers, %d writers)", t.first, t.last, len(t.readers)-1, len(t.writers)-1)
}

// Clear removes all handlers from the table.
func (t *Table) Clear() {
	clear(t.read)
	clear(t.write)
	t.readers = append(t.readers[:0], OpenBus)
	t.writers = append(t.writers[:0], Discard)
}

// Map registers handlers for the address range first to last inclusive. A nil
// Reader or Writer leaves the existing handler in place for that direction.
func (t *Table) Map(first uint16, last uint16, r Reader, w Writer) {
	assert.Check(first <= last && first >= t.first && last <= t.last,
		"decoder: range %#04x-%#04x is not inside table %s", first, last, t)

	first = max(first, t.first)
	last = min(last, t.last)
	if first > last {
		return
	}

	if r != nil {
		t.readers = append(t.readers, r)
		idx := uint16(len(t.readers) - 1)
		for a := int(first); a <= int(last); a++ {
			t.read[a-int(t.first)] = idx
		}
	}

	if w != nil {
		t.writers = append(t.writers, w)
		idx := uint16(len(t.writers) - 1)
		for a := int(first); a <= int(last); a++ {
			t.write[a-int(t.first)] = idx
		}
	}
}

// MapRead registers a Reader for the range.
func (t *Table) MapRead(first uint16, last uint16, r Reader) {
	t.Map(first, last, r, nil)
}

// MapWrite registers a Writer for the range.
func (t *Table) MapWrite(first uint16, last uint16, w Writer) {
	t.Map(first, last, nil, w)
}

// Unmap removes the handlers for the range. Reads will return the open bus
// value and writes will be ignored.
func (t *Table) Unmap(first uint16, last uint16) {
	t.Map(first, last, OpenBus, Discard)
}

// Contains returns true if the address is inside the range of the table.
func (t *Table) Contains(addr uint16) bool {
	return addr >= t.first && addr <= t.last
}

// Read dispatches the read to the handler for the address.
func (t *Table) Read(addr uint16) uint8 {
	if addr < t.first || addr > t.last {
		return uint8(addr >> 8)
	}
	return t.readers[t.read[addr-t.first]].Read(addr)
}

// Peek returns the value at the address without triggering side effects in
// handlers that implement the Peeker interface.
func (t *Table) Peek(addr uint16) uint8 {
	if addr < t.first || addr > t.last {
		return uint8(addr >> 8)
	}
	r := t.readers[t.read[addr-t.first]]
	if p, ok := r.(Peeker); ok {
		return p.Peek(addr)
	}
	return r.Read(addr)
}

// Write dispatches the write to the handler for the address.
func (t *Table) Write(addr uint16, data uint8) {
	if addr < t.first || addr > t.last {
		return
	}
	t.writers[t.write[addr-t.first]].Write(addr, data)
}

// Reader returns the Reader currently registered for the address.
func (t *Table) Reader(addr uint16) Reader {
	if addr < t.first || addr > t.last {
		return OpenBus
	}
	return t.readers[t.read[addr-t.first]]
}

// Writer returns the Writer currently registered for the address.
func (t *Table) Writer(addr uint16) Writer {
	if addr < t.first || addr > t.last {
		return Discard
	}
	return t.writers[t.write[addr-t.first]]
}
