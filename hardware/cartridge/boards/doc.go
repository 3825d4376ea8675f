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

// Package boards contains the implementations of the supported cartridge
// boards. A board is created with New(), which selects the implementation by
// the iNES mapper number.
//
// Supported boards:
//
//	0	NROM
//	1	SxROM (MMC1)
//	2	UxROM
//	3	CNROM
//	4	TxROM (MMC3)
//	7	AxROM
//	9	PxROM (MMC2)
//	69	Sunsoft FME-7
//	105	NES-EVENT (Nintendo World Championships 1990)
//
// The discrete logic boards (UxROM, CNROM and AxROM) emulate bus conflicts
// if the BusConflicts preference is set. NES 2.0 submappers that describe
// bus conflict behaviour take precedence over the preference.
package boards
