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

// Package state serialises cartridge boards as a stream of nested chunks.
//
// Every chunk starts with a four byte identifier and a four byte length, both
// little-endian. The identifier is three printable characters followed by a
// version number. The length is the number of bytes in the payload that
// follows. The payload is either raw data or more chunks.
//
//	+-----+---+----------+---------------------+
//	| 'R' 'E' 'G' ver    | length  | payload   |
//	+-----+---+----------+---------------------+
//
// A Saver writes chunks into a buffer. The length of a chunk is not known
// until the chunk is closed with End(), at which point the length field is
// filled in.
//
// A Loader reads chunks. Begin() returns the identifier of the next chunk in
// the current scope, or NoChunk if there are no more chunks. End() moves the
// read position to the end of the current chunk whether or not the payload
// has been fully read. A reader that doesn't recognise an identifier can
// simply call End() and continue with the next chunk.
//
// Reads past the end of a chunk return zero. Together with End() skipping
// unread data this means a chunk can grow or shrink between versions without
// breaking older or newer readers.
package state
