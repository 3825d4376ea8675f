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

import "fmt"

// Window sizes.
const (
	Size1K  = 0x0400
	Size2K  = 0x0800
	Size4K  = 0x1000
	Size8K  = 0x2000
	Size16K = 0x4000
	Size32K = 0x8000
)

// Region is a block of cartridge memory. ROM regions share the data given to
// NewROM() and never write to it.
type Region struct {
	Name     string
	Data     []byte
	Writable bool

	// the contents of the region survive power off
	Battery bool
}

// NewROM creates a read-only Region. The data is not copied.
func NewROM(name string, data []byte) *Region {
	return &Region{
		Name: name,
		Data: data,
	}
}

// NewRAM creates a writable Region using the supplied memory.
func NewRAM(name string, data []byte, battery bool) *Region {
	return &Region{
		Name:     name,
		Data:     data,
		Writable: true,
		Battery:  battery,
	}
}

func (r *Region) String() string {
	if r.Writable {
		if r.Battery {
			return fmt.Sprintf("%s (%dK battery RAM)", r.Name, len(r.Data)/Size1K)
		}
		return fmt.Sprintf("%s (%dK RAM)", r.Name, len(r.Data)/Size1K)
	}
	return fmt.Sprintf("%s (%dK ROM)", r.Name, len(r.Data)/Size1K)
}

// Size returns the number of bytes in the region.
func (r *Region) Size() int {
	return len(r.Data)
}

// NumBanks returns the number of banks of windowSize in the region. A region
// smaller than the window is one bank.
func (r *Region) NumBanks(windowSize int) int {
	if len(r.Data) <= windowSize {
		return 1
	}
	return len(r.Data) / windowSize
}

// Clear sets every byte in a writable region to zero.
func (r *Region) Clear() {
	if r.Writable {
		clear(r.Data)
	}
}
