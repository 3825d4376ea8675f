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
	"fmt"
	"io"

	"github.com/jetsetilly/gophernes/assert"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/boards"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
)

// NoBattery is returned by the battery functions when the attached board has
// no battery backed RAM.
const NoBattery = "cartridge: %s has no battery backed RAM"

// Cartridge defines the information and operations for an NES cartridge.
type Cartridge struct {
	env *environment.Environment
	cpu bus.CPU
	ppu bus.PPU

	Filename string
	Hash     string

	// the board for the attached cartridge. never nil
	board board.Board

	// the cartridge should only be accessed by the emulation goroutine
	owner assert.Owner
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The new cartridge is ejected.
func NewCartridge(env *environment.Environment, cpu bus.CPU, ppu bus.PPU) *Cartridge {
	cart := &Cartridge{
		env: env,
		cpu: cpu,
		ppu: ppu,
	}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	return cart.Summary()
}

// Summary returns brief information about the cartridge. The first line is
// the filename and the second line is the board description.
func (cart *Cartridge) Summary() string {
	return fmt.Sprintf("%s\n%s", cart.Filename, cart.board)
}

// Board returns the board of the attached cartridge.
func (cart *Cartridge) Board() board.Board {
	return cart.board
}

// Eject removes the cartridge. Unlike the real hardware, an ejected cartridge
// continues to respond to the CPU with open bus values.
func (cart *Cartridge) Eject() {
	if cart.board != nil && !cart.IsEjected() {
		cart.env.Notify.Notify(notifications.NotifyBoardEjected, cart.board.Name())
		logger.Logf(cart.env, "cartridge", "ejected %s", cart.Filename)
	}

	cart.Filename = ejectedName
	cart.Hash = ejectedHash
	cart.board = ejected{}

	cart.ppu.SetAddressLineHook(nil)
	cart.ppu.SetMirroring(cart.board.Mirroring())
	cart.cpu.ClearIRQ()
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.Hash == ejectedHash
}

// Attach the cartridge data in the loader. The board is hard reset and ready
// for use. If the cartridge cannot be attached then the cartridge is left
// ejected.
func (cart *Cartridge) Attach(cartload cartridgeloader.Loader) error {
	cart.owner.Check()
	cart.Eject()

	err := cartload.Load()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	img, err := cartload.Image()
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	b, err := boards.New(board.Context{
		Env:        cart.env,
		CPU:        cart.cpu,
		PPU:        cart.ppu,
		Mapper:     img.Mapper,
		Submapper:  img.Submapper,
		PRG:        img.PRG,
		CHR:        img.CHR,
		WRAMSize:   img.WRAMSize,
		CHRRAMSize: img.CHRRAMSize,
		Battery:    img.Battery,
		Mirroring:  img.Mirroring,
	})
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}

	cart.Filename = cartload.Filename
	cart.Hash = cartload.Hash
	cart.board = b
	cart.board.Reset(true)

	logger.Logf(cart.env, "cartridge", "attached %s (%s)", cartload.ShortName(), img)
	cart.env.Notify.Notify(notifications.NotifyBoardAttached, cart.board.Name())

	return nil
}

// Reset the cartridge. A hard reset is the same as switching the console off
// and on again.
func (cart *Cartridge) Reset(hard bool) {
	cart.owner.Check()
	cart.board.Reset(hard)
}

// ReadCPU is a CPU read of the cartridge.
func (cart *Cartridge) ReadCPU(addr uint16) uint8 {
	return cart.board.ReadCPU(addr)
}

// PeekCPU is the same as ReadCPU() but with no side effects.
func (cart *Cartridge) PeekCPU(addr uint16) uint8 {
	return cart.board.PeekCPU(addr)
}

// WriteCPU is a CPU write to the cartridge.
func (cart *Cartridge) WriteCPU(addr uint16, data uint8) {
	cart.board.WriteCPU(addr, data)
}

// ReadCHR is a PPU read of the pattern tables.
func (cart *Cartridge) ReadCHR(addr uint16) uint8 {
	return cart.board.ReadCHR(addr)
}

// WriteCHR is a PPU write to the pattern tables.
func (cart *Cartridge) WriteCHR(addr uint16, data uint8) {
	cart.board.WriteCHR(addr, data)
}

// Sync should be called by the console at fixed points during the frame.
func (cart *Cartridge) Sync(ev bus.Event, ctrl bus.Controllers) {
	cart.board.Sync(ev, ctrl)
}

// Update should be called after every CPU instruction. Very few boards care
// about this.
func (cart *Cartridge) Update() {
	if c, ok := cart.board.(board.Clocked); ok {
		c.Update()
	}
}

// SaveBattery writes the contents of the battery backed RAM to w.
func (cart *Cartridge) SaveBattery(w io.Writer) error {
	ram, ok := cart.board.(board.BatteryRAM)
	if !ok || ram.BatteryData() == nil {
		return curated.Errorf(NoBattery, cart.board.Name())
	}
	if _, err := w.Write(ram.BatteryData()); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	return nil
}

// LoadBattery replaces the contents of the battery backed RAM with the data
// read from r.
func (cart *Cartridge) LoadBattery(r io.Reader) error {
	ram, ok := cart.board.(board.BatteryRAM)
	if !ok || ram.BatteryData() == nil {
		return curated.Errorf(NoBattery, cart.board.Name())
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	if err := ram.LoadBatteryData(data); err != nil {
		return curated.Errorf("cartridge: %v", err)
	}
	return nil
}
