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

// Package banks maps windows of a CPU or PPU address range onto banks of
// cartridge memory.
//
// A Region is a block of cartridge memory (PRG-ROM, CHR-ROM, WRAM, CHR-RAM).
// A Space is an address range divided into pages, each of which points into
// a Region. Bank switching is done by calling Space.Swap() with the size of
// the window being switched, the address of the window and the bank number:
//
//	prg.Swap(banks.Size16K, 0xc000, -1)
//
// The bank number is taken modulo the number of banks of that size in the
// Region. Because the number is treated as unsigned, -1 selects the last bank
// and -2 the second to last bank (for power-of-two sized regions).
//
// Swapping never copies or allocates memory.
package banks
