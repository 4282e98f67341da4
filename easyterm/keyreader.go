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

package easyterm

import (
	"bufio"
	"io"
)

// Key is a decoded key press.
type Key int

// List of valid Key values.
const (
	NoKey Key = iota
	Next
	Prev
	Halt
	Random
	Dump
	Status
	Quit
)

func (k Key) String() string {
	switch k {
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Halt:
		return "halt"
	case Random:
		return "random"
	case Dump:
		return "dump"
	case Status:
		return "status"
	case Quit:
		return "quit"
	}
	return "none"
}

// KeyReader decodes bytes from a terminal into Key values.
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader is the preferred method of initialisation for the KeyReader
// type.
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until a recognised key has been pressed. Unrecognised
// input is skipped. Errors from the underlying reader are returned unchanged.
func (kr *KeyReader) ReadKey() (Key, error) {
	for {
		b, err := kr.r.ReadByte()
		if err != nil {
			return NoKey, err
		}

		if k := kr.decode(b); k != NoKey {
			return k, nil
		}
	}
}

func (kr *KeyReader) decode(b byte) Key {
	switch b {
	case 'n', 'N', ' ', KeyCarriageReturn:
		return Next
	case 'p', 'P', KeyBackspace, KeyCtrlH:
		return Prev
	case 'h', 'H':
		return Halt
	case 'r', 'R':
		return Random
	case 'd', 'D':
		return Dump
	case 's', 'S', KeyTab:
		return Status
	case 'q', 'Q', KeyCtrlC:
		return Quit
	case KeyEsc:
		return kr.escape()
	}
	return NoKey
}

// escape decodes the remainder of a control sequence. a lone escape
// character quits
func (kr *KeyReader) escape() Key {
	if kr.r.Buffered() == 0 {
		return Quit
	}

	b, err := kr.r.ReadByte()
	if err != nil || b != EscCursor {
		return NoKey
	}

	b, err = kr.r.ReadByte()
	if err != nil {
		return NoKey
	}

	switch b {
	case CursorForward, CursorUp:
		return Next
	case CursorBackward, CursorDown:
		return Prev
	}
	return NoKey
}
