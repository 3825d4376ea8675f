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

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/digest"
	"github.com/jetsetilly/gophernes/easyterm"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/hardware/cartridge/board"
	"github.com/jetsetilly/gophernes/hardware/cartridge/boards"
	"github.com/jetsetilly/gophernes/hardware/cartridge/state"
	"github.com/jetsetilly/gophernes/hardware/mainboard"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
)

func main() {
	// #ctrlc
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	exitVal := make(chan int)
	go func() {
		exitVal <- launch(os.Stdout, os.Args[1:])
	}()

	select {
	case <-intChan:
		fmt.Print("\r")
		os.Exit(0)
	case v := <-exitVal:
		os.Exit(v)
	}
}

// launch parses the command line and runs the selected mode. the return value
// is the exit status of the program
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("INFO", "STATE", "PERFORMANCE", "VERSION")

	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsGroup := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *log {
		if f, ok := output.(*os.File); ok && easyterm.IsTerminal(f) {
			logger.SetEcho(logger.NewColorizer(output))
		} else {
			logger.SetEcho(output)
		}
		defer logger.SetEcho(nil)
	}

	if *prefsGroup != "" {
		prefs.PushCommandLineStack(*prefsGroup)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	switch md.Mode() {
	case "INFO":
		err = info(output, md)
	case "STATE":
		err = saveState(output, md)
	case "PERFORMANCE":
		err = perform(output, md)
	case "VERSION":
		v, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// emulation is the cartridge plugged into a mainboard
type emulation struct {
	mb   *mainboard.Mainboard
	cart *cartridge.Cartridge
}

func newEmulation(cartload cartridgeloader.Loader) (*emulation, error) {
	prf, err := preferences.NewPreferences("")
	if err != nil {
		return nil, err
	}

	emu := &emulation{
		mb: mainboard.NewMainboard(),
	}
	env := environment.NewEnvironment(environment.MainEmulation, emu.mb.CPU, prf, nil)
	emu.cart = cartridge.NewCartridge(env, emu.mb.CPU, emu.mb.PPU)

	err = emu.cart.Attach(cartload)
	if err != nil {
		return nil, err
	}
	emu.mb.Plug(emu.cart)

	return emu, nil
}

func info(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	list := md.AddBool("boards", false, "list supported boards")
	mvz := md.AddString("memviz", "", "write a graph of the board structure to file (graphviz format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *list {
		for _, b := range boards.Supported() {
			fmt.Fprintf(output, "%3d %s\n", b.ID, b.Name)
		}
		return nil
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	emu, err := newEmulation(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}

	fmt.Fprintln(output, emu.cart.Summary())
	fmt.Fprint(output, emu.cart.Board().MappedBanks())

	if dip, ok := emu.cart.Board().(board.DIPSwitches); ok {
		var s strings.Builder
		for i := range dip.NumDIPSwitches() {
			if dip.DIPSwitch(i) {
				s.WriteRune('1')
			} else {
				s.WriteRune('0')
			}
		}
		fmt.Fprintf(output, "dip switches: %s\n", s.String())
	}

	if *mvz != "" {
		f, err := os.Create(*mvz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, emu.cart.Board())
	}

	return nil
}

// parsePokes parses a list of CPU writes in the form "addr=data, addr=data".
// both values are in hex
func parsePokes(s string) ([][2]uint16, error) {
	var pokes [][2]uint16
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		a, d, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("poke must be of the form addr=data (%s)", p)
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(a), "$"), 16, 16)
		if err != nil {
			return nil, fmt.Errorf("poke address: %w", err)
		}
		data, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(d), "$"), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("poke data: %w", err)
		}
		pokes = append(pokes, [2]uint16{uint16(addr), uint16(data)})
	}
	return pokes, nil
}

func saveState(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	list := md.AddBool("list", false, "list the chunks in a state file")
	poke := md.AddString("poke", "", "CPU writes to make before saving (addr=data, addr=data)")
	frames := md.AddInt("frames", 0, "number of frames to run before saving")
	load := md.AddString("load", "", "state file to load before the pokes are made")
	out := md.AddString("o", "", "state file to write. default is a unique file in the states directory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one file required for %s mode", md)
	}

	if *list {
		data, err := os.ReadFile(md.GetArg(0))
		if err != nil {
			return err
		}
		return state.Describe(output, data)
	}

	pokes, err := parsePokes(*poke)
	if err != nil {
		return err
	}

	cartload := cartridgeloader.NewLoader(md.GetArg(0))
	emu, err := newEmulation(cartload)
	if err != nil {
		return err
	}

	if *load != "" {
		f, err := os.Open(*load)
		if err != nil {
			return err
		}
		defer f.Close()
		err = emu.cart.LoadState(f)
		if err != nil {
			return err
		}
	}

	for _, p := range pokes {
		emu.mb.Store(p[0], uint8(p[1]))
	}

	for range *frames {
		emu.mb.RunFrame()
	}

	fn := *out
	if fn == "" {
		fn, err = paths.ResourcePath("states", paths.UniqueFilename("state", cartload.ShortName()))
		if err != nil {
			return err
		}
	}

	var b bytes.Buffer
	err = emu.cart.SaveState(&b)
	if err != nil {
		return err
	}

	err = os.WriteFile(fn, b.Bytes(), 0o644)
	if err != nil {
		return err
	}

	fmt.Fprint(output, emu.cart.Board().MappedBanks())
	fmt.Fprintf(output, "state saved to %s (%s)\n", fn, digest.Snapshot(emu.cart.Board()))

	return nil
}

func perform(output io.Writer, md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	uncapped := md.AddBool("uncapped", true, "run performance without a frame rate cap")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview is not available in this build")
		}
		stop := statsview.Launch(output)
		defer stop()
	}

	prf, err := preferences.NewPreferences("")
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prof, cartridgeloader.NewLoader(md.GetArg(0)), prf, *uncapped, *duration)
}
