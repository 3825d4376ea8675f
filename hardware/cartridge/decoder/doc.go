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

// Package decoder dispatches reads and writes to the handler registered for
// the address.
//
// Handlers are registered for a range of addresses with Table.Map(). A
// registration replaces any earlier registration for the same addresses, so
// a board can register a general handler for a large range and then
// override parts of that range. Boards that extend other boards rely on
// this.
//
// Reads of addresses without a handler return the open bus value, which for
// the NES is the high byte of the address. Writes to addresses without a
// handler are ignored.
package decoder
