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

// Package board defines the Board interface implemented by every cartridge
// board and the Base type that boards are built on.
//
// A board is constructed from a Context. The Context gives the board the ROM
// images, which are shared and never copied, and the CPU and PPU that the
// board is plugged into.
//
// The Base type owns the memory regions of the board and maps them into the
// CPU and PPU address spaces with the banks package. It also owns the two
// decoder tables that every access to the cartridge goes through. Boards embed
// Base and register handlers for their registers when they are reset.
//
// Optional capabilities of a board are discovered by type assertion. For
// example, a board with DIP switches implements the DIPSwitches interface.
package board
