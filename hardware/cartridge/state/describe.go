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

package state

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"
)

// Describe writes an indented list of the chunks in data to w. Whether a
// payload contains nested chunks or raw data is not recorded in the format so
// a payload is described as nested if it divides exactly into chunks with
// printable identifiers.
func Describe(w io.Writer, data []byte) error {
	return describe(w, data, 0)
}

func describe(w io.Writer, data []byte, depth int) error {
	for len(data) >= headerLen {
		id := ID(binary.LittleEndian.Uint32(data))
		length := int(binary.LittleEndian.Uint32(data[4:]))
		data = data[headerLen:]

		if length > len(data) {
			_, err := fmt.Fprintf(w, "%s%s: truncated (%d of %d bytes)\n", strings.Repeat("  ", depth), id, len(data), length)
			return err
		}

		payload := data[:length]
		data = data[length:]

		if nested(payload) {
			if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), id); err != nil {
				return err
			}
			if err := describe(w, payload, depth+1); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s%s: %d bytes\n", strings.Repeat("  ", depth), id, length); err != nil {
			return err
		}
	}

	if len(data) > 0 {
		_, err := fmt.Fprintf(w, "%s%d trailing bytes\n", strings.Repeat("  ", depth), len(data))
		return err
	}

	return nil
}

// nested returns true if data divides exactly into chunks with printable IDs
func nested(data []byte) bool {
	if len(data) < headerLen {
		return false
	}
	for len(data) > 0 {
		if len(data) < headerLen {
			return false
		}
		id := ID(binary.LittleEndian.Uint32(data))
		length := int(binary.LittleEndian.Uint32(data[4:]))
		if !id.Printable() || length > len(data)-headerLen {
			return false
		}
		data = data[headerLen+length:]
	}
	return true
}
