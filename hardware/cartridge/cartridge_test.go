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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/hardware/cartridge/boards"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/hardware/mainboard"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/test"
	nes "github.com/retroenv/retrogolib/nes/cartridge"
)

// ines builds an iNES file with the number of 16K PRG banks and 8K CHR banks.
// every PRG byte is the number of the 8K bank it is in and every CHR byte is
// the number of the 1K bank it is in
func ines(prg, chr int, battery, mirror, mapper byte) []byte {
	c1, c2 := nes.ControlBytes(battery, mirror, mapper, false)
	data := []byte{'N', 'E', 'S', 0x1a, byte(prg), byte(chr), c1, c2, 0, 0, 0, 0, 0, 0, 0, 0}
	for i := range prg * 0x4000 {
		data = append(data, uint8(i>>13))
	}
	for i := range chr * 0x2000 {
		data = append(data, uint8(i>>10))
	}
	return data
}

type recorder struct {
	notices []notifications.Notice
	details []string
}

func (r *recorder) Notify(notice notifications.Notice, detail string) error {
	r.notices = append(r.notices, notice)
	r.details = append(r.details, detail)
	return nil
}

func newCartridge() (*cartridge.Cartridge, *mainboard.Mainboard, *recorder) {
	mb := mainboard.NewMainboard()
	rec := &recorder{}
	env := environment.NewEnvironment(environment.MainEmulation, mb.CPU, nil, rec)
	env.Normalise()
	cart := cartridge.NewCartridge(env, mb.CPU, mb.PPU)
	mb.Plug(cart)
	return cart, mb, rec
}

func TestEjected(t *testing.T) {
	cart, mb, rec := newCartridge()
	test.ExpectEquality(t, cart.IsEjected(), true)
	test.ExpectEquality(t, cart.Summary(), "ejected\nejected")
	test.ExpectEquality(t, mb.Read(0x8000), 0x80)
	test.ExpectEquality(t, cart.PeekCPU(0xc123), 0xc1)
	test.ExpectEquality(t, cart.ReadCHR(0x0000), 0)
	test.ExpectEquality(t, len(rec.notices), 0)

	err := cart.SaveBattery(&bytes.Buffer{})
	test.ExpectSuccess(t, curated.Is(err, cartridge.NoBattery))

	// the state of an ejected cartridge can be saved and loaded
	var b bytes.Buffer
	test.DemandSuccess(t, cart.SaveState(&b))
	test.ExpectSuccess(t, cart.LoadState(&b))
}

func TestAttach(t *testing.T) {
	cart, mb, rec := newCartridge()

	err := cart.Attach(cartridgeloader.NewLoaderFromData("uxrom.nes", ines(8, 0, 0, 1, 2)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.IsEjected(), false)
	test.ExpectEquality(t, cart.Filename, "uxrom.nes")
	test.ExpectEquality(t, cart.Board().ID(), 2)
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.Vertical)

	test.DemandEquality(t, len(rec.notices), 1)
	test.ExpectEquality(t, rec.notices[0], notifications.NotifyBoardAttached)
	test.ExpectEquality(t, rec.details[0], cart.Board().Name())

	// the last 16K bank is fixed at $c000
	test.ExpectEquality(t, mb.Read(0x8000), 0)
	test.ExpectEquality(t, mb.Read(0xc000), 14)
	test.ExpectEquality(t, mb.Read(0xe000), 15)

	name := cart.Board().Name()
	cart.Eject()
	test.ExpectEquality(t, cart.IsEjected(), true)
	test.ExpectEquality(t, mb.PPU.Mirroring(), bus.Horizontal)
	test.DemandEquality(t, len(rec.notices), 2)
	test.ExpectEquality(t, rec.notices[1], notifications.NotifyBoardEjected)
	test.ExpectEquality(t, rec.details[1], name)

	// ejecting twice sends one notification
	cart.Eject()
	test.ExpectEquality(t, len(rec.notices), 2)
}

func TestAttachFailure(t *testing.T) {
	cart, _, _ := newCartridge()

	err := cart.Attach(cartridgeloader.NewLoaderFromData("mmc5.nes", ines(2, 1, 0, 0, 5)))
	test.ExpectSuccess(t, curated.Has(err, boards.UnsupportedBoard))
	test.ExpectEquality(t, cart.IsEjected(), true)

	err = cart.Attach(cartridgeloader.NewLoaderFromData("junk", []byte("junk")))
	test.ExpectSuccess(t, curated.Has(err, cartridgeloader.NotINES))
	test.ExpectEquality(t, cart.IsEjected(), true)

	// a failed attachment ejects the previous cartridge
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("nrom.nes", ines(2, 1, 0, 0, 0))))
	test.ExpectEquality(t, cart.IsEjected(), false)
	test.ExpectFailure(t, cart.Attach(cartridgeloader.NewLoaderFromData("junk", []byte("junk"))))
	test.ExpectEquality(t, cart.IsEjected(), true)
}

func TestState(t *testing.T) {
	cart, mb, _ := newCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("mmc3.nes", ines(8, 16, 0, 0, 4))))

	mb.Store(0x8000, 0x06)
	mb.Store(0x8001, 0x03)
	mb.Store(0x8000, 0x02)
	mb.Store(0x8001, 0x21)
	test.DemandEquality(t, mb.Read(0x8000), 3)
	test.DemandEquality(t, cart.ReadCHR(0x1000), 0x21)

	var saved bytes.Buffer
	test.DemandSuccess(t, cart.SaveState(&saved))

	cart.Reset(true)
	test.ExpectEquality(t, mb.Read(0x8000), 0)
	test.ExpectEquality(t, cart.ReadCHR(0x1000), 4)

	test.DemandSuccess(t, cart.LoadState(bytes.NewReader(saved.Bytes())))
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 3)
	test.ExpectEquality(t, cart.ReadCHR(0x1000), 0x21)

	// a soft reset doesn't change the bank mapping
	cart.Reset(false)
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 3)

	// loading a state replaces the current state entirely
	mb.Store(0x8000, 0x06)
	mb.Store(0x8001, 0x07)
	test.DemandSuccess(t, cart.LoadState(bytes.NewReader(saved.Bytes())))
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 3)
}

func TestStateMismatch(t *testing.T) {
	w := &test.CompareWriter{}

	cart, mb, _ := newCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("mmc3.nes", ines(8, 16, 0, 0, 4))))
	mb.Store(0x8000, 0x06)
	mb.Store(0x8001, 0x03)

	var saved bytes.Buffer
	test.DemandSuccess(t, cart.SaveState(&saved))

	// same board but different data
	data := ines(8, 16, 0, 0, 4)
	data[len(data)-1] = 0xff
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("other.nes", data)))
	mb.Store(0x8000, 0x06)
	mb.Store(0x8001, 0x05)

	logger.Clear()
	test.DemandSuccess(t, cart.LoadState(bytes.NewReader(saved.Bytes())))
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 0)
	logger.Tail(w, 2)
	test.ExpectSuccess(t, w.Contains("different cartridge"))
	test.ExpectSuccess(t, w.Contains("has been reset"))

	// a state with the correct hash but for a different board
	s := state.NewSaver()
	s.Begin(state.NewID("HSH", 1))
	s.WriteBytes([]byte(cart.Hash))
	s.End()
	s.Begin(state.NewID("NRM", 1))
	s.End()

	mb.Store(0x8000, 0x06)
	mb.Store(0x8001, 0x05)

	logger.Clear()
	w.Clear()
	test.DemandSuccess(t, cart.LoadState(bytes.NewReader(s.Bytes())))
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 0)
	logger.Tail(w, 2)
	test.ExpectSuccess(t, w.Contains("NRM.1 state not suitable"))

	// truncated state is restored as far as possible
	logger.Clear()
	w.Clear()
	test.DemandSuccess(t, cart.LoadState(bytes.NewReader(saved.Bytes()[:10])))
	test.ExpectEquality(t, cart.PeekCPU(0x8000), 0)
	logger.Tail(w, 5)
	test.ExpectSuccess(t, w.Contains("state:"))
}

func TestBattery(t *testing.T) {
	cart, mb, _ := newCartridge()
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("battery.nes", ines(8, 16, 1, 0, 4))))

	// enable WRAM
	mb.Store(0xa001, 0x80)

	ram := make([]byte, 0x2000)
	ram[0] = 0x42
	ram[0x1fff] = 0x24
	test.DemandSuccess(t, cart.LoadBattery(bytes.NewReader(ram)))
	test.ExpectEquality(t, cart.PeekCPU(0x6000), 0x42)
	test.ExpectEquality(t, cart.PeekCPU(0x7fff), 0x24)

	mb.Store(0x6001, 0x99)

	var b bytes.Buffer
	test.DemandSuccess(t, cart.SaveBattery(&b))
	test.DemandEquality(t, b.Len(), 0x2000)
	test.ExpectEquality(t, b.Bytes()[1], 0x99)

	// wrong size
	test.ExpectFailure(t, cart.LoadBattery(bytes.NewReader(ram[:10])))

	// no battery
	test.DemandSuccess(t, cart.Attach(cartridgeloader.NewLoaderFromData("nrom.nes", ines(2, 1, 0, 0, 0))))
	test.ExpectSuccess(t, curated.Is(cart.LoadBattery(bytes.NewReader(ram)), cartridge.NoBattery))
}
