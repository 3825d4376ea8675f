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
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// nrom has no registers. 16K of PRG is mirrored at $c000.
type nrom struct {
	*board.Base
}

var nromID = state.NewID("NRM", 1)

func newNROM(ctx board.Context) (board.Board, error) {
	base, err := board.NewBase(ctx)
	if err != nil {
		return nil, err
	}
	return &nrom{Base: base}, nil
}

func (b *nrom) Name() string {
	return "NROM"
}

func (b *nrom) String() string {
	return fmt.Sprintf("%s [%s, %s]", b.Name(), b.PRG, b.CHR)
}

func (b *nrom) StateID() state.ID {
	return nromID
}

func (b *nrom) Reset(hard bool) {
	b.ResetBase(hard)
}

func (b *nrom) SaveState(s *state.Saver) {
	b.SaveBase(s)
}

func (b *nrom) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		b.LoadBase(l, id)
	})
}
