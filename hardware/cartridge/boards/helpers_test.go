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

package boards_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/boards"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/hardware/mainboard"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/test"
)

// prgImage returns PRG data in which every byte is the number of the 8K bank
// it is in
func prgImage(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = uint8(i >> 13)
	}
	return d
}

// chrImage returns CHR data in which every byte is the number of the 1K bank
// it is in
func chrImage(size int) []byte {
	d := make([]byte, size)
	for i := range d {
		d[i] = uint8(i >> 10)
	}
	return d
}

type notice struct {
	notice notifications.Notice
	detail string
}

type recorder struct {
	notices []notice
}

func (r *recorder) Notify(n notifications.Notice, detail string) error {
	r.notices = append(r.notices, notice{notice: n, detail: detail})
	return nil
}

// last returns the detail of the most recent notice of the given type
func (r *recorder) last(n notifications.Notice) (string, bool) {
	for i := len(r.notices) - 1; i >= 0; i-- {
		if r.notices[i].notice == n {
			return r.notices[i].detail, true
		}
	}
	return "", false
}

type rig struct {
	mb    *mainboard.Mainboard
	env   *environment.Environment
	rec   *recorder
	board board.Board
}

// newRig creates and hard resets a board plugged into a mainboard. the setup
// functions are called before the board is created and can be used to change
// preferences
func newRig(t *testing.T, ctx board.Context, setup ...func(*environment.Environment)) *rig {
	t.Helper()

	r := &rig{
		mb:  mainboard.NewMainboard(),
		rec: &recorder{},
	}
	r.env = environment.NewEnvironment(environment.MainEmulation, r.mb.CPU, nil, r.rec)
	r.env.Normalise()
	for _, f := range setup {
		f(r.env)
	}

	ctx.Env = r.env
	ctx.CPU = r.mb.CPU
	ctx.PPU = r.mb.PPU

	var err error
	r.board, err = boards.New(ctx)
	test.DemandSuccess(t, err)

	r.board.Reset(true)
	r.mb.Plug(r.board)

	return r
}

// serial writes a value to an MMC1 register one bit at a time
func (r *rig) serial(addr uint16, v uint8) {
	for i := range 5 {
		r.mb.Store(addr, (v>>i)&0x01)
	}
}

func save(b board.Board) []byte {
	s := state.NewSaver()
	s.Begin(b.StateID())
	b.SaveState(s)
	s.End()
	return s.Bytes()
}

func load(t *testing.T, b board.Board, data []byte) {
	t.Helper()
	l := state.NewLoader(data)
	id := l.Begin()
	test.DemandEquality(t, id.Tag(), b.StateID().Tag())
	b.LoadState(l, id)
	l.End()
	test.ExpectSuccess(t, l.Err())
}

// open returns a Loader positioned at the start of the chunk found by
// following the list of tags. returns nil if the chunk can't be found
func open(data []byte, tags ...string) *state.Loader {
	l := state.NewLoader(data)
	for _, tag := range tags {
		for {
			id := l.Begin()
			if id == state.NoChunk {
				return nil
			}
			if id.Tag() == tag {
				break
			}
			l.End()
		}
	}
	return l
}
