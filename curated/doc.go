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

// Package curated wraps the Go error type with errors that remember the
// pattern they were created with.
//
// Errors are created with Errorf(), which takes the same arguments as the
// function of the same name in the fmt package. The pattern is what identifies
// the error, so sentinel errors are simply pattern strings stored as named
// constants:
//
//	const UnsupportedBoard = "board: unsupported mapper (%d)"
//
//	err := curated.Errorf(UnsupportedBoard, 255)
//	if curated.Is(err, UnsupportedBoard) {
//		...
//	}
//
// Has() checks for the pattern anywhere in the chain of curated errors. Is()
// only checks the outermost error.
//
// Message chains are built from parts separated by ": ". When the chain is
// printed adjacent parts that are the same are reduced to one, so that it
// doesn't matter too much where in the call stack an error is wrapped:
//
//	cartridge: cartridge: no data
//
// is printed as
//
//	cartridge: no data
package curated
