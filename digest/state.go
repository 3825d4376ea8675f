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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// save the state of the board in the same form as the cartridge does
func save(b board.Board) []byte {
	s := state.NewSaver()
	s.Begin(b.StateID())
	b.SaveState(s)
	s.End()
	return s.Bytes()
}

// Snapshot returns the hash of the current state of the board.
func Snapshot(b board.Board) string {
	return fmt.Sprintf("%x", sha1.Sum(save(b)))
}

// State implements the Digest interface. The digest is chained so that
// calling Update() at the end of every frame produces a hash of the entire
// history of the board.
type State struct {
	board  board.Board
	digest [sha1.Size]byte
}

// NewState is the preferred method of initialisation for the State type.
func NewState(b board.Board) *State {
	return &State{board: b}
}

// Hash implements digest.Digest interface
func (dig State) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface
func (dig *State) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
}

// Update chains the current state of the board to the digest.
func (dig *State) Update() {
	// the previous digest is at the head of the data
	data := append(dig.digest[:], save(dig.board)...)
	dig.digest = sha1.Sum(data)
}
