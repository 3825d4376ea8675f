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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.DemandEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// whitespace around keys and values is removed
	prefs.PushCommandLineStack("  hardware.cartridge.a12filter ::  12 ")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cartridge.a12filter::12")

	// unused pairs are returned in key order
	prefs.PushCommandLineStack("hardware.randstate::true; hardware.cartridge.dipswitches::7")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cartridge.dipswitches::7; hardware.randstate::true")

	// badly formed pairs are dropped
	prefs.PushCommandLineStack("hardware.cartridge.busconflicts; hardware.cartridge.a12filter::8::9; hardware.randstate::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.randstate::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLinePref(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cartridge.a12filter::12; hardware.cartridge.busconflicts::false")

	ok, v := prefs.GetCommandLinePref("hardware.cartridge.a12filter")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "12")

	// a value is consumed when it is returned
	ok, _ = prefs.GetCommandLinePref("hardware.cartridge.a12filter")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("hardware.cartridge.dipswitches")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cartridge.busconflicts::false")

	// nothing to consult once the stack is empty
	ok, _ = prefs.GetCommandLinePref("hardware.cartridge.busconflicts")
	test.ExpectFailure(t, ok)
}

// only the most recent group is consulted
func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.cartridge.dipswitches::3")
	prefs.PushCommandLineStack("hardware.cartridge.a12filter::4")
	test.DemandEquality(t, prefs.SizeCommandLineStack(), 2)

	ok, _ := prefs.GetCommandLinePref("hardware.cartridge.dipswitches")
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.cartridge.a12filter::4")

	ok, v := prefs.GetCommandLinePref("hardware.cartridge.dipswitches")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "3")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
