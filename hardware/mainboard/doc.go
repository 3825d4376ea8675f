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

// Package mainboard is a minimal stand-in for the NES console. It provides
// implementations of the bus.CPU and bus.PPU interfaces and drives a cartridge
// with the same pattern of accesses that the real console would.
//
// The CPU is not emulated. Accesses to the cartridge are made explicitly with
// the Read() and Write() functions, each of which takes one CPU cycle. The PPU
// is emulated only so far as the pattern table fetches made during rendering,
// which is enough to drive boards that watch the PPU address bus.
//
// The mainboard is used by the tests for the cartridge boards and by the
// command line tools.
package mainboard
