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

package boards

import (
	"sort"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
)

// UnsupportedBoard is returned by New() when there is no implementation for
// the mapper number.
const UnsupportedBoard = "boards: unsupported mapper (%d)"

// Info describes a supported board.
type Info struct {
	ID   int
	Name string

	create func(board.Context) (board.Board, error)
}

var registry = map[int]Info{
	0:   {ID: 0, Name: "NROM", create: newNROM},
	1:   {ID: 1, Name: "SxROM", create: newMMC1},
	2:   {ID: 2, Name: "UxROM", create: newUxROM},
	3:   {ID: 3, Name: "CNROM", create: newCNROM},
	4:   {ID: 4, Name: "TxROM", create: newMMC3},
	7:   {ID: 7, Name: "AxROM", create: newAxROM},
	9:   {ID: 9, Name: "PxROM", create: newMMC2},
	69:  {ID: 69, Name: "FME-7", create: newFME7},
	105: {ID: 105, Name: "NES-EVENT", create: newNWC},
}

// New creates the board for the mapper number in the context. The board
// should be hard reset before use.
//
// Returns an UnsupportedBoard error if there is no implementation for the
// mapper, or a board.AllocationError if memory for the board could not be
// allocated.
func New(ctx board.Context) (board.Board, error) {
	info, ok := registry[ctx.Mapper]
	if !ok {
		return nil, curated.Errorf(UnsupportedBoard, ctx.Mapper)
	}
	return info.create(ctx)
}

// Supported returns information about every supported board, sorted by ID.
func Supported() []Info {
	s := make([]Info, 0, len(registry))
	for _, info := range registry {
		s = append(s, info)
	}
	sort.Slice(s, func(i, j int) bool {
		return s[i].ID < s[j].ID
	})
	return s
}
