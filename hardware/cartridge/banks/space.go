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
	"fmt"

	"github.com/jetsetilly/gophernes/assert"
)

// page is the smallest switchable unit of a Space.
type page struct {
	source int
	offset int
}

// Space is an address range divided into equal sized pages. Each page points
// into one of the Regions the Space was created with.
type Space struct {
	origin   uint16
	size     int
	pageSize int
	pageMask uint16
	sources  []*Region
	pages    []page
}

// NewSpace creates a Space starting at origin. The size and pageSize must be
// powers of two. The first source is the default source for all pages.
//
// All pages initially map the first pageSize bytes of the first source.
func NewSpace(origin uint16, size int, pageSize int, sources ...*Region) *Space {
	assert.Check(len(sources) > 0, "banks: space must have at least one source")
	assert.Check(size > 0 && size&(size-1) == 0, "banks: space size must be a power of two (%#x)", size)
	assert.Check(pageSize > 0 && pageSize&(pageSize-1) == 0, "banks: page size must be a power of two (%#x)", pageSize)
	assert.Check(size%pageSize == 0, "banks: page size (%#x) does not divide space size (%#x)", pageSize, size)

	s := &Space{
		origin:   origin,
		size:     size,
		pageSize: pageSize,
		pageMask: uint16(pageSize - 1),
		sources:  sources,
		pages:    make([]page, size/pageSize),
	}

	return s
}

func (s *Space) String() string {
	return fmt.Sprintf("%#04x-%#04x", s.origin, int(s.origin)+s.size-1)
}

// Origin returns the first address of the space.
func (s *Space) Origin() uint16 {
	return s.origin
}

// Size returns the number of bytes in the space.
func (s *Space) Size() int {
	return s.size
}

// PageSize returns the size of the smallest switchable window.
func (s *Space) PageSize() int {
	return s.pageSize
}

// Sources returns the regions that can be mapped into the space.
func (s *Space) Sources() []*Region {
	return s.sources
}

// Swap maps bank of the current source of the window. The window is the
// windowSize block of addresses starting at addr.
func (s *Space) Swap(windowSize int, addr uint16, bank int) {
	first, n := s.window(windowSize, addr)
	s.swap(s.pages[first].source, first, n, windowSize, bank)
}

// SwapSource maps bank of the source region into the window. The source must
// be one of the regions the Space was created with.
func (s *Space) SwapSource(source *Region, windowSize int, addr uint16, bank int) {
	idx := s.sourceIndex(source)
	if idx < 0 {
		assert.Check(false, "banks: %s is not a source for space %s", source.Name, s)
		return
	}
	first, n := s.window(windowSize, addr)
	s.swap(idx, first, n, windowSize, bank)
}

// Query returns the (effective) bank number of windowSize currently mapped
// at addr.
func (s *Space) Query(windowSize int, addr uint16) int {
	first, _ := s.window(windowSize, addr)
	return s.pages[first].offset / windowSize
}

// Source returns the region currently mapped at addr.
func (s *Space) Source(addr uint16) *Region {
	return s.sources[s.pages[s.pageIndex(addr)].source]
}

// window returns the index of the first page of the window and the number of
// pages in the window.
func (s *Space) window(windowSize int, addr uint16) (int, int) {
	assert.Check(windowSize >= s.pageSize && windowSize <= s.size, "banks: window size (%#x) is not valid for space %s", windowSize, s)
	assert.Check(int(addr-s.origin)%windowSize == 0, "banks: address (%#04x) is not aligned to window size (%#x)", addr, windowSize)

	n := windowSize / s.pageSize
	if n < 1 {
		n = 1
	}
	first := s.pageIndex(addr)
	if first+n > len(s.pages) {
		n = len(s.pages) - first
	}
	return first, n
}

func (s *Space) swap(source int, first int, n int, windowSize int, bank int) {
	data := s.sources[source].Data
	size := len(data)

	// a region smaller than the window is mirrored through the window
	if size <= windowSize {
		assert.Check(size == 0 || windowSize%size == 0, "banks: window size (%#x) is not a multiple of region size (%#x)", windowSize, size)
		for i := 0; i < n; i++ {
			offset := 0
			if size > 0 {
				offset = (i * s.pageSize) % size
			}
			s.pages[first+i] = page{source: source, offset: offset}
		}
		return
	}

	assert.Check(size%windowSize == 0, "banks: window size (%#x) does not divide region size (%#x)", windowSize, size)

	// bank number is treated as unsigned so that negative numbers count back
	// from the last bank
	numBanks := uint(size / windowSize)
	base := int(uint(bank)%numBanks) * windowSize

	for i := 0; i < n; i++ {
		s.pages[first+i] = page{source: source, offset: base + i*s.pageSize}
	}
}

func (s *Space) sourceIndex(source *Region) int {
	for i := range s.sources {
		if s.sources[i] == source {
			return i
		}
	}
	return -1
}

func (s *Space) pageIndex(addr uint16) int {
	return int(addr-s.origin) / s.pageSize
}

// index returns the region and index into the region data for the address.
func (s *Space) index(addr uint16) (*Region, int) {
	p := s.pages[s.pageIndex(addr)]
	r := s.sources[p.source]
	i := p.offset + int(addr&s.pageMask)
	if i >= len(r.Data) {
		if len(r.Data) == 0 {
			return r, -1
		}
		i %= len(r.Data)
	}
	return r, i
}

// Read returns the byte mapped at addr. An empty region reads as the high
// byte of the address.
func (s *Space) Read(addr uint16) uint8 {
	r, i := s.index(addr)
	if i < 0 {
		return uint8(addr >> 8)
	}
	return r.Data[i]
}

// Peek is the same as Read. It is provided so that a Space satisfies the
// decoder.Peeker interface.
func (s *Space) Peek(addr uint16) uint8 {
	return s.Read(addr)
}

// Write stores data at addr if the mapped region is writable. Returns false
// if the write had no effect.
func (s *Space) Write(addr uint16, data uint8) bool {
	r, i := s.index(addr)
	if i < 0 || !r.Writable {
		return false
	}
	r.Data[i] = data
	return true
}

// Poke stores data at addr even if the mapped region is read-only. Only
// useful for debugging.
func (s *Space) Poke(addr uint16, data uint8) {
	r, i := s.index(addr)
	if i >= 0 {
		r.Data[i] = data
	}
}

// Mapping describes what is mapped into a page of the space.
type Mapping struct {
	Address uint16
	Size    int
	Source  *Region
	Offset  int
}

func (m Mapping) String() string {
	return fmt.Sprintf("%#04x: %s %#x", m.Address, m.Source.Name, m.Offset)
}

// Mappings returns the current mapping of every page in the space. Adjacent
// pages that map contiguous memory from the same source are merged.
func (s *Space) Mappings() []Mapping {
	var m []Mapping

	for i, p := range s.pages {
		addr := s.origin + uint16(i*s.pageSize)
		src := s.sources[p.source]
		if n := len(m); n > 0 {
			l := &m[n-1]
			if l.Source == src && l.Offset+l.Size == p.offset {
				l.Size += s.pageSize
				continue
			}
		}
		m = append(m, Mapping{Address: addr, Size: s.pageSize, Source: src, Offset: p.offset})
	}

	return m
}
