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

// Package paths contains functions to prepare paths to gophernes resources.
//
// ResourcePath() prepends the configuration directory to the requested
// resource, creating directories as required. For example, the path to the
// preferences file:
//
//	p, err := paths.ResourcePath("", "preferences")
//
// For development builds the configuration directory is ".gophernes" in the
// current working directory. Release builds (the "release" build tag) use the
// gophernes directory in the user's configuration directory, as returned by
// os.UserConfigDir().
package paths
