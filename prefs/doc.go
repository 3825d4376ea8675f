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

// Package prefs facilitates the storage of preferences to disk. Preferences
// are typed values (Bool, Int, String) that can be registered with a Disk
// instance by key. The Disk instance saves and loads the values from a plain
// text file:
//
//	*** do not edit this file by hand unless the emulator is not running ***
//	cartridge.a12filter :: 16
//	cartridge.randomstate :: false
//
// Preferences can also be given on the command line. PushCommandLineStack()
// takes a string of key/value pairs, which take priority over the values in
// the file the next time Disk.Load() is called.
//
// Hook functions can be attached to a value. These are called before and
// after the value is changed.
package prefs
