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

// Package cartridge ties a cartridge image to the board that maps it into the
// NES address spaces.
//
// A Cartridge is created with NewCartridge() and is empty until Attach() is
// called with a cartridgeloader.Loader. The mapper number in the iNES header
// selects the board. Currently supported boards are:
//
//	NROM		0
//	SxROM (MMC1)	1
//	UxROM		2
//	CNROM		3
//	TxROM (MMC3)	4
//	AxROM		7
//	PxROM (MMC2)	9
//	Sunsoft FME-7	69
//	NES-EVENT	105
//
// The state of the cartridge is saved as a series of chunks with the
// SaveState() function. The first chunk records the hash of the cartridge
// data. The second is the chunk written by the board. When a state is loaded
// the cartridge is hard reset first, so that a state that doesn't match the
// attached cartridge leaves the cartridge as if it had just been switched on.
package cartridge
