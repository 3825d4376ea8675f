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

// Package timer contains the interrupt timers found on cartridge boards.
//
// A timer is made of a clock source and a counting unit. The clock source is
// either the CPU clock (M2) or rising edges of the PPU address line A12
// (A12). The counting unit is anything that implements the Unit interface.
// Counter is a general purpose unit suitable for most boards. Boards with
// unusual counters implement their own unit.
//
// The M2 clock source is lazy. It only clocks the unit when Update() is
// called, at which point it catches up with the CPU. Boards must call Update()
// before reading or changing any state that depends on the count.
//
// The A12 clock source is installed as the PPU address line hook and ignores
// rising edges that come too soon after the previous high period. This
// prevents the unit from being clocked more than once per scanline by the
// sprite pattern fetches.
package timer
