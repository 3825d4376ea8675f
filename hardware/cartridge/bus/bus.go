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

// Package bus defines the interfaces between a cartridge board and the rest
// of the console. The CPU and PPU are not emulated by the cartridge packages,
// they are collaborators that the board is given on construction.
package bus

// CPU is the view of the CPU required by a cartridge board.
type CPU interface {
	// Cycles returns the number of master clock cycles since power on. The
	// value never decreases.
	Cycles() uint64

	// ClockDivider is the number of master clock cycles in one CPU cycle.
	ClockDivider() uint64

	// AssertIRQ raises the IRQ line. The line stays raised until ClearIRQ()
	// is called.
	AssertIRQ()

	// ClearIRQ lowers the IRQ line.
	ClearIRQ()
}

// PPU is the view of the PPU required by a cartridge board.
type PPU interface {
	// Cycles returns the number of PPU cycles since power on. The value never
	// decreases.
	Cycles() uint64

	// SetMirroring changes how the nametables are arranged.
	SetMirroring(Mirroring)

	// SetAddressLineHook installs a hook that is called with every address
	// put on the PPU address bus. A nil hook removes any existing hook.
	SetAddressLineHook(LineHook)
}

// LineHook is implemented by types that need to see every PPU address.
type LineHook interface {
	AddressLine(addr uint16)
}

// Controllers is the view of the input devices given to a board when it is
// synchronised.
type Controllers interface {
	// Buttons returns the state of the buttons for the controller in the
	// given port. A set bit means the button is pressed.
	Buttons(port int) uint8
}
