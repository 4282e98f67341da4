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

// Package easyterm puts the controlling terminal into cbreak mode and turns
// key presses into navigation keys for the viewer.
//
// The KeyReader type does the decoding and works with any io.Reader. The
// Terminal type connects a KeyReader to the tty and delivers keys on a
// channel.
package easyterm
