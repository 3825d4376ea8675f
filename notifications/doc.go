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

// Package notifications allow communication from a cartridge board directly
// to the emulation instance.
//
// Notifications are usually passed onto the user interface to show the user
// what has happened. For example, the NES-EVENT board sends the remaining
// competition time every second. For other notifications it is appropriate for
// the emulation instance to deal with the notification invisibly.
package notifications
