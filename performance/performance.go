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

package performance

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/hardware/mainboard"
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/performance/limiter"
)

// sentinal error returned by the runner.
var timedOut = errors.New("performance timed out")

// the amount of time the emulation runs for before measurement begins. allows
// the frame rate to settle down
var leadTime = 2 * time.Second

// Check the performance of the emulator using the supplied cartridge.
//
// Emulation will run for the specified duration and will create a cpu, memory
// profile, a trace (or a combination of those) as defined by the Profile
// argument. If uncapped is false then the emulation is limited to the NTSC
// frame rate. The prefs argument can be nil.
func Check(output io.Writer, profile Profile, cartload cartridgeloader.Loader, prefs *preferences.Preferences, uncapped bool, duration string) error {
	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	mb := mainboard.NewMainboard()
	env := environment.NewEnvironment(environment.MainEmulation, mb.CPU, prefs, nil)

	cart := cartridge.NewCartridge(env, mb.CPU, mb.PPU)
	err = cart.Attach(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	mb.Plug(cart)

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(int(math.Round(framesPerSecond)))
		defer lim.Stop()
	}

	// get starting frame number (should be 0)
	startFrame := mb.Frame()

	// run for specified period of time
	runner := func() error {
		// setup trigger that expires when duration has elapsed. signals true
		// when duration has expired. signals false to indicate that
		// performance measurement should start
		timerChan := make(chan bool)

		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		for {
			if lim != nil {
				lim.Wait()
			}

			mb.RunFrame()

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = mb.Frame()
			default:
			}
		}
	}

	// launch runner directly or through the profiler, depending on supplied
	// arguments
	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	// calculate performance
	numFrames := mb.Frame() - startFrame
	fps, accuracy := CalcFPS(numFrames, dur.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, dur.Seconds(), accuracy)

	return nil
}
