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

package environment

import (
	"github.com/jetsetilly/gophernes/hardware/preferences"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/random"
)

// Label is used to name the environment
type Label string

// MainEmulation is the label used for the main emulation. Only the main
// emulation is allowed to log.
const MainEmulation = Label("")

// Environment is used to provide context for an emulation. Particularly useful
// when using multiple emulations
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences

	// notifications from the hardware are sent here
	Notify notifications.Notify
}

// NewEnvironment is the preferred method of initialisation for the Environment type.
//
// The clock is used as the source of time for random numbers and can be nil.
// In the case of the prefs argument it can be nil and a new volatile
// Preferences instance will be created. Providing a non-nil value allows the
// preferences of more than one emulation to be synchronised. A nil notify
// argument means notifications are discarded.
func NewEnvironment(label Label, clock random.Clock, prefs *preferences.Preferences, notify notifications.Notify) *Environment {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(clock),
		Prefs:  prefs,
		Notify: notify,
	}

	if env.Prefs == nil {
		env.Prefs = preferences.NewVolatilePreferences()
	}

	if env.Notify == nil {
		env.Notify = notifications.Discard{}
	}

	return env
}

// Normalise ensures the environment is in an known default state. Useful for
// regression testing where the initial state must be the same for every run of
// the test.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is intended for the main
// emulation in the system
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// IsEmulation checks the emulation label and returns true if it matches
func (env *Environment) IsEmulation(label Label) bool {
	return env.Label == label
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
