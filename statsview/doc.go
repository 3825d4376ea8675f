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

// Package statsview offers a local HTTP server showing runtime statistics of
// the emulator. The server is only available when the statsview build tag is
// present. Without the tag Launch() does nothing and Available() returns
// false.
//
// Graphs are provided by "github.com/go-echarts/statsview" and after launch
// can be viewed at:
//
//	localhost:12600/debug/statsview
//
// Standard pprof statistics are available at:
//
//	localhost:12600/debug/pprof/
//
// The PERFORMANCE mode of the command line tool launches the server with the
// -statsview flag.
package statsview
