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

// Package test contains helper functions to remove common boilerplate from
// tests written for the standard go test harness.
//
// The Expect functions report a failed test with t.Errorf() and allow the
// test to continue. The Demand functions use t.Fatalf() and should be used
// when later parts of a test depend on the value being correct.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type: a bool is successful if it is true and an error is successful if
// it is nil. An untyped nil is treated as success because that's how errors
// are usually communicated.
//
// The optional tags argument to the Expect and Demand functions is prepended
// to any failure message. This is useful when the test is inside a loop.
//
// CompareWriter implements io.Writer and is used to capture output for later
// comparison.
package test
