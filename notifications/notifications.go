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

package notifications

// Notice describes events that somehow change the presentation of the
// emulation. These notifications can be used to present additional information
// to the user
type Notice string

// List of defined notifications.
const (
	// the board has text that should be shown to the user. the detail is the
	// text to show. an empty detail means the text should be removed
	NotifyBoardText Notice = "NotifyBoardText"

	// the DIP switches on the board have been changed. the detail is the new
	// value of the switches in binary
	NotifyDIPSwitchesChanged Notice = "NotifyDIPSwitchesChanged"

	// the board has been attached or ejected. the detail is the name of the
	// board
	NotifyBoardAttached Notice = "NotifyBoardAttached"
	NotifyBoardEjected  Notice = "NotifyBoardEjected"
)

// Notify is used for direct communication between the hardware and the
// emulation instance.
type Notify interface {
	Notify(notice Notice, detail string) error
}

// Discard is an implementation of Notify that ignores all notifications.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice, _ string) error {
	return nil
}
