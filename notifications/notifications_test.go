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

package notifications_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/notifications"
	"github.com/jetsetilly/gophernes/test"
)

type recorder struct {
	notices []notifications.Notice
	details []string
}

func (r *recorder) Notify(notice notifications.Notice, detail string) error {
	r.notices = append(r.notices, notice)
	r.details = append(r.details, detail)
	return nil
}

func TestNotify(t *testing.T) {
	var n notifications.Notify = notifications.Discard{}
	test.ExpectSuccess(t, n.Notify(notifications.NotifyBoardText, "hello"))

	r := &recorder{}
	n = r
	test.ExpectSuccess(t, n.Notify(notifications.NotifyBoardText, "6:00"))
	test.ExpectSuccess(t, n.Notify(notifications.NotifyBoardText, ""))
	test.DemandEquality(t, len(r.notices), 2)
	test.ExpectEquality(t, r.notices[0], notifications.NotifyBoardText)
	test.ExpectEquality(t, r.details[0], "6:00")
	test.ExpectEquality(t, r.details[1], "")
}
