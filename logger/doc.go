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

// Package logger is the central logging facility. Log entries are made with
// Log() and Logf() and the log can be written to any io.Writer with Write()
// or Tail().
//
// Every entry is made with a Permission. Only implementations that allow
// logging will result in an entry. The environment package implements
// Permission so that only the main emulation instance writes to the log.
//
// Repeated entries are folded into a single entry with a repeat count.
package logger
