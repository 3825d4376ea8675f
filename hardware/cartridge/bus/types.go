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

package bus

// Mirroring describes how the four logical nametables map onto the physical
// nametable memory.
type Mirroring int

// List of valid Mirroring values.
const (
	Horizontal Mirroring = iota
	Vertical
	SingleScreenA
	SingleScreenB
	FourScreen
)

func (m Mirroring) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case SingleScreenA:
		return "single screen A"
	case SingleScreenB:
		return "single screen B"
	case FourScreen:
		return "four screen"
	}
	return "unknown mirroring"
}

// Event is sent to a board at fixed points in the video frame.
type Event int

// List of valid Event values.
const (
	EventBeginFrame Event = iota
	EventEndScanline
	EventEndFrame
	EventPowerOff
)

func (e Event) String() string {
	switch e {
	case EventBeginFrame:
		return "begin frame"
	case EventEndScanline:
		return "end scanline"
	case EventEndFrame:
		return "end frame"
	case EventPowerOff:
		return "power off"
	}
	return "unknown event"
}
