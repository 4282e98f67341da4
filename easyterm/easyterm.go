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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jetsetilly/imager/curated"
	"github.com/pkg/term"
)

// Error pattern returned when a terminal could not be prepared.
const (
	NoTerminal = "easyterm: %v"
)

// Terminal reads keys from the controlling terminal.
type Terminal struct {
	tty    *term.Term
	output io.Writer

	keys chan Key
	done chan struct{}

	crit   sync.Mutex
	closed bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The controlling terminal is opened in cbreak mode and keys are read
// from it until Close() is called. Output written with Print() goes to the
// output writer, or to stdout if output is nil.
func NewTerminal(output io.Writer) (*Terminal, error) {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf(NoTerminal, err)
	}

	if output == nil {
		output = os.Stdout
	}

	t := &Terminal{
		tty:    tty,
		output: output,
		keys:   make(chan Key, 8),
		done:   make(chan struct{}),
	}

	go t.read(NewKeyReader(tty))

	return t, nil
}

func (t *Terminal) read(kr *KeyReader) {
	defer close(t.keys)
	for {
		k, err := kr.ReadKey()
		if err != nil {
			if !errors.Is(err, io.EOF) && !t.isClosed() {
				t.Print("\r%v\n", curated.Errorf(NoTerminal, err))
			}
			return
		}

		select {
		case t.keys <- k:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) isClosed() bool {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.closed
}

// Keys returns the channel on which key presses are delivered. The channel
// is closed once the terminal has been closed or can no longer be read.
func (t *Terminal) Keys() <-chan Key {
	return t.keys
}

// Print writes formatted output to the terminal.
func (t *Terminal) Print(s string, a ...any) {
	t.crit.Lock()
	defer t.crit.Unlock()
	fmt.Fprintf(t.output, s, a...)
}

// Close restores the terminal to the mode it was in before NewTerminal() was
// called. It is safe to call Close() more than once.
func (t *Terminal) Close() error {
	t.crit.Lock()
	if t.closed {
		t.crit.Unlock()
		return nil
	}
	t.closed = true
	close(t.done)
	t.crit.Unlock()

	err := t.tty.Restore()
	if cerr := t.tty.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return curated.Errorf(NoTerminal, err)
	}
	return nil
}
