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

// Package playlist maintains the ordered list of image identifiers that is
// being viewed, along with a cursor that indicates the current image.
//
// An identifier is an opaque string. Usually it is a filesystem path or an
// http URL but the playlist does not care.
//
// The order of the playlist can be changed at any time with one of the
// sorting functions. Sorting does not move the cursor, meaning that after a
// sort the cursor will most likely point to a different image. Callers that
// want the cursor to follow the current image should make a note of the
// current identifier before sorting.
//
// All the exported functions of the Playlist type are safe to call from any
// goroutine. Callers that need to make several related changes to the
// playlist, without another goroutine interleaving its own changes, should
// use the Borrow() function.
package playlist
