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

package cartridgeloader

import (
	"bytes"
	"fmt"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/retroenv/retrogolib/nes/cartridge"
)

// NotINES is returned by Image() when the data is not an iNES file.
const NotINES = "cartridgeloader: not an iNES file (%s)"

const headerLen = 16

// flags 6 of the header
const (
	flagTrainer    = 0x04
	flagFourScreen = 0x08
	trainerLen     = 512
)

var magic = []byte{'N', 'E', 'S', 0x1a}

// Image is the decoded content of an iNES file.
type Image struct {
	Mapper    int
	Submapper int

	PRG []byte
	CHR []byte

	// size of the RAM at $6000 and whether it is battery backed
	WRAMSize int
	Battery  bool

	// size of CHR-RAM. zero means the board decides
	CHRRAMSize int

	Mirroring bus.Mirroring

	// the header is in the NES 2.0 format
	NES2 bool
}

func (img Image) String() string {
	s := fmt.Sprintf("mapper %d", img.Mapper)
	if img.NES2 {
		s = fmt.Sprintf("%s.%d (NES 2.0)", s, img.Submapper)
	}
	s = fmt.Sprintf("%s, PRG %dK, ", s, len(img.PRG)/1024)
	if len(img.CHR) > 0 {
		s = fmt.Sprintf("%sCHR %dK", s, len(img.CHR)/1024)
	} else {
		s = fmt.Sprintf("%sCHR-RAM", s)
	}
	if img.WRAMSize > 0 {
		s = fmt.Sprintf("%s, WRAM %dK", s, img.WRAMSize/1024)
		if img.Battery {
			s = fmt.Sprintf("%s (battery)", s)
		}
	}
	return fmt.Sprintf("%s, %s", s, img.Mirroring)
}

// boards that always have RAM at $6000 even if the header doesn't say so
var wramMappers = map[int]bool{1: true, 4: true, 69: true, 105: true}

// Image decodes the loaded data. Load() must have been called.
func (cl Loader) Image() (Image, error) {
	if len(cl.Data) < headerLen || !bytes.HasPrefix(cl.Data, magic) {
		return Image{}, curated.Errorf(NotINES, cl.ShortName())
	}

	header := cl.Data[:headerLen]

	c, err := cartridge.LoadFile(bytes.NewReader(normalise(cl.Data)))
	if err != nil {
		return Image{}, curated.Errorf(NotINES, err)
	}
	if len(c.PRG) == 0 {
		return Image{}, curated.Errorf(NotINES, "no PRG data")
	}

	img := Image{
		Mapper:  int(c.Mapper),
		PRG:     c.PRG,
		CHR:     c.CHR,
		Battery: c.Battery != 0,
		NES2:    header[7]&0x0c == 0x08,
	}

	switch {
	case header[6]&flagFourScreen == flagFourScreen:
		img.Mirroring = bus.FourScreen
	case uint8(c.Mirror)&0x01 == 0x01:
		img.Mirroring = bus.Vertical
	default:
		img.Mirroring = bus.Horizontal
	}

	if img.NES2 {
		img.Mapper |= int(header[8]&0x0f) << 8
		img.Submapper = int(header[8] >> 4)
		img.WRAMSize = shiftSize(header[10]&0x0f) + shiftSize(header[10]>>4)
		img.CHRRAMSize = shiftSize(header[11]&0x0f) + shiftSize(header[11]>>4)
		return img, nil
	}

	// iNES gives the RAM size in 8K units. zero usually means that the size
	// is unknown rather than there being no RAM
	switch {
	case header[8] > 0:
		img.WRAMSize = int(header[8]) * 0x2000
	case img.Battery || wramMappers[img.Mapper]:
		img.WRAMSize = 0x2000
	}

	return img, nil
}

// normalise returns the data with the trainer removed and with the flags 6
// trainer and four-screen bits cleared. retrogolib reads bit 3 as the trainer
// flag and ignores bit 2, so both bits are dealt with here
func normalise(data []byte) []byte {
	flags := data[6]
	if flags&(flagTrainer|flagFourScreen) == 0 {
		return data
	}

	body := data[headerLen:]
	if flags&flagTrainer == flagTrainer {
		if len(body) < trainerLen {
			body = nil
		} else {
			body = body[trainerLen:]
		}
	}

	n := make([]byte, 0, headerLen+len(body))
	n = append(n, data[:headerLen]...)
	n[6] &^= flagTrainer | flagFourScreen
	return append(n, body...)
}

// NES 2.0 RAM sizes are 64 bytes shifted left by the value. zero is no RAM
func shiftSize(v uint8) int {
	if v == 0 {
		return 0
	}
	return 64 << v
}
