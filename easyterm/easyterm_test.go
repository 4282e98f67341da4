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

package easyterm_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/jetsetilly/imager/easyterm"
	"github.com/jetsetilly/imager/test"
)

func readAll(t *testing.T, input []byte) []easyterm.Key {
	t.Helper()

	var keys []easyterm.Key
	kr := easyterm.NewKeyReader(bytes.NewReader(input))
	for {
		k, err := kr.ReadKey()
		if err != nil {
			test.ExpectEquality(t, err, io.EOF)
			return keys
		}
		keys = append(keys, k)
	}
}

func TestLetters(t *testing.T) {
	keys := readAll(t, []byte("nphrdsqNPx z"))
	test.DemandEquality(t, len(keys), 10)
	test.ExpectEquality(t, keys[0], easyterm.Next)
	test.ExpectEquality(t, keys[1], easyterm.Prev)
	test.ExpectEquality(t, keys[2], easyterm.Halt)
	test.ExpectEquality(t, keys[3], easyterm.Random)
	test.ExpectEquality(t, keys[4], easyterm.Dump)
	test.ExpectEquality(t, keys[5], easyterm.Status)
	test.ExpectEquality(t, keys[6], easyterm.Quit)
	test.ExpectEquality(t, keys[7], easyterm.Next)
	test.ExpectEquality(t, keys[8], easyterm.Prev)
	test.ExpectEquality(t, keys[9], easyterm.Next)
}

func TestSpaceAndBackspace(t *testing.T) {
	keys := readAll(t, []byte{' ', easyterm.KeyBackspace, easyterm.KeyCtrlH, easyterm.KeyCtrlC})
	test.DemandEquality(t, len(keys), 4)
	test.ExpectEquality(t, keys[0], easyterm.Next)
	test.ExpectEquality(t, keys[1], easyterm.Prev)
	test.ExpectEquality(t, keys[2], easyterm.Prev)
	test.ExpectEquality(t, keys[3], easyterm.Quit)
}

func TestCursorKeys(t *testing.T) {
	keys := readAll(t, []byte{
		easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorForward,
		easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorBackward,
		easyterm.KeyEsc, easyterm.EscCursor, 'Z',
		easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorUp,
	})
	test.DemandEquality(t, len(keys), 3)
	test.ExpectEquality(t, keys[0], easyterm.Next)
	test.ExpectEquality(t, keys[1], easyterm.Prev)
	test.ExpectEquality(t, keys[2], easyterm.Next)
}

func TestLoneEscape(t *testing.T) {
	keys := readAll(t, []byte{easyterm.KeyEsc})
	test.DemandEquality(t, len(keys), 1)
	test.ExpectEquality(t, keys[0], easyterm.Quit)
}

func TestKeyString(t *testing.T) {
	test.ExpectEquality(t, easyterm.Next.String(), "next")
	test.ExpectEquality(t, easyterm.Quit.String(), "quit")
	test.ExpectEquality(t, easyterm.NoKey.String(), "none")
}
