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

package cartridge

import (
	"io"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/logger"
)

var hashID = state.NewID("HSH", 1)

// SaveState writes the state of the cartridge to w.
func (cart *Cartridge) SaveState(w io.Writer) error {
	cart.owner.Check()

	s := state.NewSaver()

	s.Begin(hashID)
	s.WriteBytes([]byte(cart.Hash))
	s.End()

	s.Begin(cart.board.StateID())
	cart.board.SaveState(s)
	s.End()

	if _, err := s.WriteTo(w); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	return nil
}

// LoadState restores the state written by SaveState(). The cartridge is hard
// reset before the state is restored.
//
// A state for a different cartridge or a different board is ignored and the
// cartridge is left in the hard reset state. Malformed state is restored as
// far as possible. In both cases the problem is logged and no error is
// returned. An error is returned only if r cannot be read.
func (cart *Cartridge) LoadState(r io.Reader) error {
	cart.owner.Check()

	l, err := state.ReadLoader(r)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	cart.board.Reset(true)

	var hash string
	var restored bool

	l.Chunks(func(id state.ID) {
		switch {
		case id.SameTag(hashID):
			b := make([]byte, l.Remaining())
			l.ReadBytes(b)
			hash = string(b)

		case id.SameTag(cart.board.StateID()):
			if hash != cart.Hash {
				logger.Logf(cart.env, "cartridge", "state is for a different cartridge (%s)", hash)
				return
			}
			cart.board.LoadState(l, id)
			restored = true

		default:
			logger.Logf(cart.env, "cartridge", "%s state not suitable for %s", id, cart.board.Name())
		}
	})

	if err := l.Err(); err != nil {
		logger.Logf(cart.env, "cartridge", "%v", err)
	}

	if !restored {
		logger.Logf(cart.env, "cartridge", "%s has been reset", cart.board.Name())
	}

	return nil
}
