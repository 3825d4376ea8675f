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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/environment"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/test"
)

func TestEnvironment(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, nil, nil, nil)
	test.ExpectSuccess(t, env.IsMainEmulation())
	test.ExpectSuccess(t, env.Prefs != nil)
	test.ExpectSuccess(t, env.Notify.Notify(notifications.NotifyBoardText, ""))
	test.DemandImplements[logger.Permission](t, env)
	test.ExpectSuccess(t, env.AllowLogging())

	thumb := environment.NewEnvironment("thumbnail", nil, env.Prefs, nil)
	test.ExpectFailure(t, thumb.IsMainEmulation())
	test.ExpectSuccess(t, thumb.IsEmulation("thumbnail"))
	test.ExpectFailure(t, thumb.AllowLogging())
	test.ExpectEquality(t, thumb.Prefs, env.Prefs)
}

func TestNormalise(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, nil, nil, nil)
	env.Prefs.Cartridge.A12Filter.Set(3)
	env.Prefs.RandomState.Set(true)
	env.Normalise()
	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Prefs.Cartridge.A12Filter.Get().(int), 16)
	test.ExpectEquality(t, env.Prefs.RandomState.Get().(bool), false)
}
