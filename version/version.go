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

// Package version reports the application name and the version of the
// running binary.
package version

import (
	"runtime/debug"

	"github.com/retroenv/retrogolib/buildinfo"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gophernes"

// number is set by the linker for release builds. if it is empty then the
// project was not built with the makefile
var number string

// revision and date of the vcs commit
var revision string
var date string

// Version returns the formatted version string and whether this is a
// numbered release.
func Version() (string, bool) {
	v := number
	if v == "" {
		v = "unreleased"
	}
	return buildinfo.Version(v, revision, date), number != ""
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			date = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision != "" && modified {
		revision += "+dirty"
	}
}
