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

	"github.com/jetsetilly/gophernes/hardware/cartridge/banks"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/decoder"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/hardware/cartridge/timer"
	"github.com/jetsetilly/gophernes/hardware/clocks"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
)

var (
	nwcID      = state.NewID("NWC", 1)
	nwcEventID = state.NewID("EVT", 1)
)

// the number of DIP switches on the NES-EVENT board
const nwcDIPSwitches = 4

// the counter value at which the interrupt is raised is made from bit 29 and
// the value of the DIP switches in bits 25 to 28
func nwcTarget(dip uint8) uint32 {
	return 0x20000000 | uint32(dip&0x0f)<<25
}

// nwcCounter is the 30 bit counter on the NES-EVENT board. it counts CPU
// cycles while bit 4 of the MMC1 CHR bank 0 register is clear
type nwcCounter struct {
	count    uint32
	target   uint32
	counting bool
	pending  bool
}

func (c *nwcCounter) Reset(hard bool) {
	c.count = 0
	c.pending = false
	if hard {
		c.counting = false
	}
}

func (c *nwcCounter) Clock() bool {
	if !c.counting {
		return false
	}
	c.count = (c.count + 1) & 0x3fffffff
	if c.count == c.target && !c.pending {
		c.pending = true
		return true
	}
	return false
}

// nwc is the NES-EVENT board used for the Nintendo World Championships 1990.
// it is an MMC1 with two 128K PRG chips, 8K of CHR-RAM and a countdown timer.
// the MMC1 CHR bank 0 register is repurposed:
//
//	bit 4		counter reset and IRQ acknowledge (1) or count (0)
//	bit 3		PRG chip select
//	bits 1-2	32K bank of the first PRG chip
//
// the second PRG chip is banked by the MMC1 PRG register in the normal way.
// at power on, the first 32K of the first chip is mapped until bit 4 has been
// cleared and then set.
type nwc struct {
	*mmc1

	dip    uint8
	unlock int

	counter nwcCounter
	timer   *timer.M2

	// the most recent countdown text sent as a notification
	countdown string
}

func newNWC(ctx board.Context) (board.Board, error) {
	m, err := makeMMC1(ctx)
	if err != nil {
		return nil, err
	}
	m.surom = false

	b := &nwc{
		mmc1: m,
		dip:  uint8(ctx.Env.Prefs.Cartridge.DIPSwitches.Get().(int)) & 0x0f,
	}
	b.counter.target = nwcTarget(b.dip)
	b.timer = timer.NewM2(ctx.CPU, &b.counter, 1)
	m.mapBanks = b.mapBanks

	return b, nil
}

func (b *nwc) Name() string {
	return "NES-EVENT"
}

func (b *nwc) String() string {
	return fmt.Sprintf("%s [%s, %s] dip=%04b counter=%#08x target=%#08x", b.Name(), b.PRG, b.CHR,
		b.dip, b.counter.count, b.counter.target)
}

func (b *nwc) StateID() state.ID {
	return nwcID
}

func (b *nwc) Reset(hard bool) {
	b.mmc1.Reset(hard)

	// writes to the MMC1 must first bring the counter up to date
	b.CPUMap.MapWrite(0x8000, 0xffff, decoder.WriteFunc(func(addr uint16, data uint8) {
		b.timer.Update()
		b.mmc1.write(addr, data)
	}))

	if hard {
		b.timer.Reset(true, true)
		b.CPU().ClearIRQ()
		b.countdown = ""
		b.unlock = 0
		b.chr0 = 0x10
		b.mapBanks()
	}
}

// Update implements the board.Clocked interface.
func (b *nwc) Update() {
	b.timer.Update()
}

func (b *nwc) mapBanks() {
	b.mapMirroring()
	b.CHRBanks.Swap(banks.Size8K, 0x0000, 0)

	hold := b.chr0&0x10 == 0x10
	if hold {
		b.counter.Reset(false)
		b.counter.counting = false
		b.timer.ClearIRQ()
	} else {
		b.counter.counting = true
	}

	switch b.unlock {
	case 0:
		if !hold {
			b.unlock = 1
		}
	case 1:
		if hold {
			b.unlock = 2
		}
	}

	switch {
	case b.unlock < 2:
		b.PRGBanks.Swap(banks.Size32K, 0x8000, 0)
	case b.chr0&0x08 == 0:
		b.PRGBanks.Swap(banks.Size32K, 0x8000, int(b.chr0>>1)&0x03)
	default:
		b.mapSecondChip()
	}
}

// the second PRG chip is banked like a 128K MMC1 board. it starts at the
// ninth 16K bank
func (b *nwc) mapSecondChip() {
	bank := int(b.prg & 0x07)

	switch (b.control >> 2) & 0x03 {
	case 0, 1:
		b.PRGBanks.Swap(banks.Size32K, 0x8000, 0x04+bank>>1)
	case 2:
		b.PRGBanks.Swap(banks.Size16K, 0x8000, 0x08)
		b.PRGBanks.Swap(banks.Size16K, 0xc000, 0x08+bank)
	case 3:
		b.PRGBanks.Swap(banks.Size16K, 0x8000, 0x08+bank)
		b.PRGBanks.Swap(banks.Size16K, 0xc000, 0x0f)
	}
}

// Sync implements the board.Board interface. The remaining time is sent as a
// notification once per second.
func (b *nwc) Sync(ev bus.Event, _ bus.Controllers) {
	if ev != bus.EventEndFrame {
		return
	}

	b.timer.Update()

	// the counter runs on after the target has been reached and will
	// eventually wrap. the pending flag is what says that time is up
	var text string
	if b.counter.counting {
		if !b.counter.pending && b.counter.count < b.counter.target {
			secs := (b.counter.target - b.counter.count) / clocks.NTSC_CPUHz
			text = fmt.Sprintf("%d:%02d", secs/60, secs%60)
		} else {
			text = "0:00"
		}
	}

	if text != b.countdown {
		if text == "0:00" {
			logger.Log(b.Env(), "NES-EVENT", "time up")
		}
		b.countdown = text
		b.Env().Notify.Notify(notifications.NotifyBoardText, text)
	}
}

// NumDIPSwitches implements the board.DIPSwitches interface.
func (b *nwc) NumDIPSwitches() int {
	return nwcDIPSwitches
}

// DIPSwitch implements the board.DIPSwitches interface.
func (b *nwc) DIPSwitch(i int) bool {
	if i < 0 || i >= nwcDIPSwitches {
		return false
	}
	return b.dip&(1<<i) != 0
}

// SetDIPSwitch implements the board.DIPSwitches interface.
func (b *nwc) SetDIPSwitch(i int, on bool) {
	if i < 0 || i >= nwcDIPSwitches {
		return
	}

	b.timer.Update()

	if on {
		b.dip |= 1 << i
	} else {
		b.dip &^= 1 << i
	}
	b.counter.target = nwcTarget(b.dip)

	logger.Logf(b.Env(), "NES-EVENT", "DIP switches: %04b", b.dip)
	b.Env().Notify.Notify(notifications.NotifyDIPSwitchesChanged, fmt.Sprintf("%04b", b.dip))
}

func (b *nwc) SaveState(s *state.Saver) {
	b.timer.Update()

	b.SaveBase(s)
	b.saveRegisters(s)

	s.Begin(nwcEventID)
	s.Write8(b.dip)
	s.Write8(uint8(b.unlock))
	s.Write32(b.counter.count)
	s.WriteBool(b.counter.counting)
	s.WriteBool(b.counter.pending)
	b.timer.SaveState(s)
	s.End()
}

func (b *nwc) LoadState(l *state.Loader, _ state.ID) {
	l.Chunks(func(id state.ID) {
		if b.LoadBase(l, id) || b.loadRegisters(l, id) {
			return
		}
		if id.SameTag(nwcEventID) {
			b.dip = l.Read8() & 0x0f
			b.unlock = min(int(l.Read8()), 2)
			b.counter.count = l.Read32() & 0x3fffffff
			b.counter.counting = l.ReadBool()
			b.counter.pending = l.ReadBool()
			b.counter.target = nwcTarget(b.dip)
			b.timer.LoadState(l)
		}
	})

	if b.counter.pending {
		b.CPU().AssertIRQ()
	}
}
