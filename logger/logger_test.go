// This file is part of Imager.
//
// Imager is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Imager is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Imager.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/imager/logger"
	"github.com/jetsetilly/imager/test"
)

type prohibit struct{}

func (_ prohibit) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	test.ExpectFailure(t, log.Write(tw))
	test.ExpectSuccess(t, tw.Compare(""))

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing, makes
	// comparisons easier to manage
	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	log.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatsAndPermissions(t *testing.T) {
	tw := &test.CompareWriter{}
	log := logger.NewLogger(100)

	log.Logf(logger.Allow, "imagemanager", "removing %s", "a.png")
	log.Logf(logger.Allow, "imagemanager", "removing %s", "a.png")
	log.Log(logger.Allow, "imagemanager", fmt.Errorf("multi\nline"))
	log.Log(prohibit{}, "imagemanager", "not logged")
	log.Log(logger.Deny, "imagemanager", "not logged")
	log.Write(tw)
	test.ExpectEquality(t, tw.String(), "imagemanager: removing a.png (repeat x2)\nimagemanager: multiline\n")

	log.Clear()
	tw.Clear()
	test.ExpectFailure(t, log.Write(tw))
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(10)
	for i := 0; i < 25; i++ {
		log.Logf(logger.Allow, "test", "%d", i)
	}

	log.BorrowLog(func(e []logger.Entry) {
		test.DemandEquality(t, len(e), 10)
		test.ExpectEquality(t, e[0].Detail, "15")
		test.ExpectEquality(t, e[9].Detail, "24")
	})
}

func TestEcho(t *testing.T) {
	r, err := test.NewRingWriter(64)
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	log.SetEcho(r)
	log.Log(logger.Allow, "echo", "one")
	test.ExpectEquality(t, r.String(), "echo: one\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "echo", "two")
	test.ExpectEquality(t, r.String(), "echo: one\n")
}

func TestColorizer(t *testing.T) {
	tw := &test.CompareWriter{}
	c := logger.NewColorizer(tw)

	c.Write([]byte("single line\n"))
	test.ExpectEquality(t, tw.String(), "single line\n")
}
