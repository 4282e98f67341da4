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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/imager/easyterm/ansi"
	"github.com/jetsetilly/imager/imageloader"
	"github.com/jetsetilly/imager/imagemanager"
)

// Display presents images to the user.
type Display interface {
	// the image to display and the state of the image manager at the time it
	// was retrieved
	Show(img *imageloader.Image, st imagemanager.Status)

	// an informative message that does not replace the image
	Message(msg string)
}

// textDisplay describes the current image on a single line of the terminal.
type textDisplay struct {
	output io.Writer
}

func newTextDisplay(output io.Writer) *textDisplay {
	return &textDisplay{output: output}
}

func (d *textDisplay) Show(img *imageloader.Image, st imagemanager.Status) {
	s := strings.Builder{}
	s.WriteString(ansi.CarriageReturn)
	s.WriteString(ansi.ClearLine)
	s.WriteString(ansi.Pens["green"])
	s.WriteString(fmt.Sprintf("[%d/%d] ", st.Cursor+1, st.Count))
	s.WriteString(ansi.NormalPen)
	s.WriteString(img.String())
	s.WriteString(ansi.DimPens["white"])
	s.WriteString(fmt.Sprintf(" %d loaded", st.LoadCount))
	s.WriteString(ansi.NormalPen)
	io.WriteString(d.output, s.String())
}

func (d *textDisplay) Message(msg string) {
	s := strings.Builder{}
	s.WriteString(ansi.CarriageReturn)
	s.WriteString(ansi.ClearLine)
	s.WriteString(ansi.DimPens["yellow"])
	s.WriteString(msg)
	s.WriteString(ansi.NormalPen)
	s.WriteString("\n")
	io.WriteString(d.output, s.String())
}
