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

package board

import (
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
)

// Context contains everything a board needs to be constructed.
type Context struct {
	Env *environment.Environment
	CPU bus.CPU
	PPU bus.PPU

	// the iNES mapper and NES 2.0 submapper numbers
	Mapper    int
	Submapper int

	// ROM images. the data is shared with the board and is never written to.
	// an empty CHR image means the board uses CHR-RAM
	PRG []byte
	CHR []byte

	// the size of the RAM at $6000. zero means the board has no RAM
	WRAMSize int

	// the size of CHR-RAM. only used if CHR is empty. zero means the default
	// size of 8K
	CHRRAMSize int

	// the RAM at $6000 is battery backed
	Battery bool

	// the nametable mirroring described by the cartridge header. boards that
	// control mirroring will ignore this unless it is FourScreen
	Mirroring bus.Mirroring
}

// Board is implemented by all cartridge boards.
type Board interface {
	// the iNES mapper number of the board
	ID() int

	// the name of the board and a longer description
	Name() string
	String() string

	// the ID of the chunk the board saves its state in
	StateID() state.ID

	// reset the board. a hard reset is the equivalent of power on and
	// restores the default bank mapping. a soft reset is the reset button and
	// leaves the bank mapping as it is
	Reset(hard bool)

	// write the state of the board as a series of chunks
	SaveState(*state.Saver)

	// read the state written by SaveState(). the id is the ID of the enclosing
	// chunk, which may be a different version to StateID(). the board should
	// have been hard reset before LoadState() so that any state missing from
	// the chunk has a sensible value
	LoadState(*state.Loader, state.ID)

	// called by the console at fixed points during the video frame
	Sync(bus.Event, bus.Controllers)

	// CPU access to the cartridge. addresses are in the range $4020 to $ffff.
	// PeekCPU() must have no side effects
	ReadCPU(addr uint16) uint8
	PeekCPU(addr uint16) uint8
	WriteCPU(addr uint16, data uint8)

	// PPU access to the cartridge. addresses are in the range $0000 to $1fff
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)

	// the current nametable mirroring
	Mirroring() bus.Mirroring

	// a description of the current bank mapping
	MappedBanks() string
}

// DIPSwitches is implemented by boards that have DIP switches. The switches
// are numbered from zero.
type DIPSwitches interface {
	NumDIPSwitches() int
	DIPSwitch(i int) bool
	SetDIPSwitch(i int, on bool)
}

// BatteryRAM is implemented by boards that can have battery backed RAM.
//
// Note that for convenience, all boards built on Base implement this
// interface. A board without battery backed RAM will return nil from
// BatteryData().
type BatteryRAM interface {
	// the live contents of the battery backed RAM
	BatteryData() []uint8

	// replace the contents of the battery backed RAM. if the data is the wrong
	// size then as much as possible is copied and an error returned
	LoadBatteryData([]uint8) error
}

// Clocked is implemented by boards that have a timer driven by the CPU clock.
// The console should call Update() after every CPU instruction so that
// interrupts are raised at the correct time.
type Clocked interface {
	Update()
}
