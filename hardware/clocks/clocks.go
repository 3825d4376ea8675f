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

// Package clocks defines the constant values that define the speed of the
// master clock in the NES console and the dividers that derive the CPU and
// PPU clocks from it.
//
// Values taken from:
// https://www.nesdev.org/wiki/Cycle_reference_chart
package clocks

// Master clock frequencies in Hz.
const (
	NTSC  = 21477272
	PAL   = 26601712
	Dendy = 26601712
)

// Number of master clock cycles in one CPU cycle.
const (
	NTSC_CPU  = 12
	PAL_CPU   = 16
	Dendy_CPU = 15
)

// Number of master clock cycles in one PPU cycle.
const (
	NTSC_PPU  = 4
	PAL_PPU   = 5
	Dendy_PPU = 5
)

// CPU clock frequencies in Hz, rounded to the nearest whole number.
const (
	NTSC_CPUHz  = (NTSC + NTSC_CPU/2) / NTSC_CPU
	PAL_CPUHz   = (PAL + PAL_CPU/2) / PAL_CPU
	Dendy_CPUHz = (Dendy + Dendy_CPU/2) / Dendy_CPU
)

// Number of PPU cycles in a scanline and scanlines in a frame.
const (
	ScanlineCycles = 341
	NTSC_Scanlines = 262
	PAL_Scanlines  = 312
)
