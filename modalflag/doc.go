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

// Package modalflag wraps the flag package of the standard library so that a
// command line can select between program modes, with each mode having its
// own set of flags.
//
// Arguments are given to the Modes type with NewArgs(). Flags and sub-modes
// for the top level are added and then Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("info", "state", "performance")
//	verbose := md.AddBool("v", false, "verbose output")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
// The first sub-mode is the default and is selected if the first argument
// after the flags doesn't name a sub-mode. Sub-mode names are case
// insensitive and are reported in upper case by Mode():
//
//	switch md.Mode() {
//	case "STATE":
//		md.NewMode()
//		list := md.AddBool("list", false, "list chunks in state file")
//		md.Parse()
//		...
//	}
//
// After NewMode() the flags for the next level of the command line can be
// added and Parse() called again. Modes can be nested as deeply as required.
// The full list of modes selected so far is returned by Path().
package modalflag
