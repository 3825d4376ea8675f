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

package mainboard

import (
	"fmt"

	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/bus"
	"github.com/jetsetilly/gophernes/hardware/clocks"
)

// Cartridge is the view of the cartridge required by the mainboard. The
// board.Board interface satisfies Cartridge.
type Cartridge interface {
	ReadCPU(addr uint16) uint8
	WriteCPU(addr uint16, data uint8)
	ReadCHR(addr uint16) uint8
	WriteCHR(addr uint16, data uint8)
	Sync(bus.Event, bus.Controllers)
}

// the number of visible scanlines in a frame
const visibleScanlines = 240

// Mainboard connects a cartridge to a CPU and PPU.
type Mainboard struct {
	CPU *CPU
	PPU *PPU

	cart Cartridge

	// the number of master clock cycles since power on
	master uint64

	frame    int
	scanline int

	// if rendering is false then the PPU makes no pattern table fetches
	Rendering bool

	// pattern table addresses for background and sprites
	BackgroundTable uint16
	SpriteTable     uint16

	// the state of the two controllers
	Controllers [2]uint8
}

// NewMainboard is the preferred method of initialisation for the Mainboard
// type. The default PPU configuration matches the common arrangement of
// backgrounds at $0000 and sprites at $1000.
func NewMainboard() *Mainboard {
	mb := &Mainboard{
		Rendering:       true,
		BackgroundTable: 0x0000,
		SpriteTable:     0x1000,
	}
	mb.CPU = &CPU{mb: mb}
	mb.PPU = &PPU{mb: mb}
	return mb
}

func (mb *Mainboard) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycles=%d irq=%v", mb.frame, mb.scanline, mb.master, mb.CPU.irq)
}

// Plug a cartridge into the mainboard. A nil cartridge is the same as no
// cartridge.
func (mb *Mainboard) Plug(cart Cartridge) {
	mb.cart = cart
}

// Frame returns the number of frames since power on.
func (mb *Mainboard) Frame() int {
	return mb.frame
}

// Scanline returns the current scanline.
func (mb *Mainboard) Scanline() int {
	return mb.scanline
}

// Buttons implements the bus.Controllers interface.
func (mb *Mainboard) Buttons(port int) uint8 {
	if port < 0 || port >= len(mb.Controllers) {
		return 0
	}
	return mb.Controllers[port]
}

// advance the master clock and let the cartridge catch up
func (mb *Mainboard) advance(master uint64) {
	mb.master += master
	if c, ok := mb.cart.(board.Clocked); ok {
		c.Update()
	}
}

// Step advances the emulation by n CPU cycles.
func (mb *Mainboard) Step(n int) {
	mb.advance(uint64(n) * clocks.NTSC_CPU)
}

// Idle advances the master clock without any bus activity. The number of
// cycles need not be a whole number of CPU cycles.
func (mb *Mainboard) Idle(master uint64) {
	mb.advance(master)
}

// Read makes a CPU read of the cartridge. The read takes one CPU cycle.
func (mb *Mainboard) Read(addr uint16) uint8 {
	mb.Step(1)
	if mb.cart == nil || addr < 0x4020 {
		return uint8(addr >> 8)
	}
	return mb.cart.ReadCPU(addr)
}

// Write makes a CPU write to the cartridge. The write takes one CPU cycle.
func (mb *Mainboard) Write(addr uint16, data uint8) {
	mb.Step(1)
	if mb.cart == nil || addr < 0x4020 {
		return
	}
	mb.cart.WriteCPU(addr, data)
}

// Store imitates the STA absolute instruction. The instruction takes four
// CPU cycles and the write to the cartridge is made on the last cycle.
func (mb *Mainboard) Store(addr uint16, data uint8) {
	mb.Step(3)
	mb.Write(addr, data)
}

// FetchCHR puts the address on the PPU address bus and reads from the
// cartridge if the address is in the pattern tables. The fetch takes two PPU
// cycles.
func (mb *Mainboard) FetchCHR(addr uint16) uint8 {
	addr &= 0x3fff
	mb.PPU.line(addr)
	mb.advance(2 * clocks.NTSC_PPU)
	if mb.cart == nil || addr >= 0x2000 {
		return 0
	}
	return mb.cart.ReadCHR(addr)
}

// sync sends an event to the cartridge
func (mb *Mainboard) sync(ev bus.Event) {
	if mb.cart != nil {
		mb.cart.Sync(ev, mb)
	}
}

// RunScanline runs the PPU for one scanline. If the scanline is visible and
// rendering is enabled then the background and sprite fetches are made.
func (mb *Mainboard) RunScanline() {
	start := mb.master

	if mb.Rendering && mb.scanline < visibleScanlines {
		// background tiles for the visible part of the scanline
		for x := range 32 {
			mb.fetchTile(mb.BackgroundTable, x)
		}

		// sprites. each pattern fetch is preceded by two nametable fetches
		for s := range 8 {
			mb.FetchCHR(0x2000)
			mb.FetchCHR(0x2000)
			tile := uint16(s + mb.scanline&0x07)
			mb.FetchCHR(mb.SpriteTable | tile<<4)
			mb.FetchCHR(mb.SpriteTable | tile<<4 | 0x08)
		}

		// the first two tiles of the next scanline
		mb.fetchTile(mb.BackgroundTable, 0)
		mb.fetchTile(mb.BackgroundTable, 1)
	}

	// idle for the remainder of the scanline
	end := start + clocks.ScanlineCycles*clocks.NTSC_PPU
	if mb.master < end {
		mb.advance(end - mb.master)
	}

	mb.sync(bus.EventEndScanline)

	mb.scanline++
	if mb.scanline >= clocks.NTSC_Scanlines {
		mb.scanline = 0
	}
}

// fetchTile makes the four fetches for one background tile
func (mb *Mainboard) fetchTile(table uint16, x int) {
	nt := 0x2000 | uint16(mb.scanline/8*32+x)&0x03ff
	mb.FetchCHR(nt)
	mb.FetchCHR(0x23c0 | uint16(mb.scanline/32*8+x/4))
	tile := uint16((x + mb.scanline/8) & 0xff)
	fine := uint16(mb.scanline & 0x07)
	mb.FetchCHR(table | tile<<4 | fine)
	mb.FetchCHR(table | tile<<4 | fine | 0x08)
}

// RunFrame runs scanlines until the start of the next frame.
func (mb *Mainboard) RunFrame() {
	mb.sync(bus.EventBeginFrame)
	for {
		mb.RunScanline()
		if mb.scanline == 0 {
			break
		}
	}
	mb.sync(bus.EventEndFrame)
	mb.frame++
}

// PowerOff sends the power off event to the cartridge.
func (mb *Mainboard) PowerOff() {
	mb.sync(bus.EventPowerOff)
}

// CPU implements the bus.CPU interface.
type CPU struct {
	mb  *Mainboard
	irq bool
}

// Cycles implements the bus.CPU interface.
func (c *CPU) Cycles() uint64 {
	return c.mb.master
}

// ClockDivider implements the bus.CPU interface.
func (c *CPU) ClockDivider() uint64 {
	return clocks.NTSC_CPU
}

// AssertIRQ implements the bus.CPU interface.
func (c *CPU) AssertIRQ() {
	c.irq = true
}

// ClearIRQ implements the bus.CPU interface.
func (c *CPU) ClearIRQ() {
	c.irq = false
}

// IRQ returns the state of the IRQ line.
func (c *CPU) IRQ() bool {
	return c.irq
}

// PPU implements the bus.PPU interface.
type PPU struct {
	mb        *Mainboard
	mirroring bus.Mirroring
	hook      bus.LineHook
}

// Cycles implements the bus.PPU interface.
func (p *PPU) Cycles() uint64 {
	return p.mb.master / clocks.NTSC_PPU
}

// SetMirroring implements the bus.PPU interface.
func (p *PPU) SetMirroring(m bus.Mirroring) {
	p.mirroring = m
}

// Mirroring returns the nametable mirroring most recently set by the
// cartridge.
func (p *PPU) Mirroring() bus.Mirroring {
	return p.mirroring
}

// SetAddressLineHook implements the bus.PPU interface.
func (p *PPU) SetAddressLineHook(hook bus.LineHook) {
	p.hook = hook
}

func (p *PPU) line(addr uint16) {
	if p.hook != nil {
		p.hook.AddressLine(addr)
	}
}

// SetAddress imitates a CPU write to the PPU address register. The address is
// put on the PPU address bus.
func (p *PPU) SetAddress(addr uint16) {
	p.line(addr & 0x3fff)
}
