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

// Package archivefs allows paths into zip archives to be treated the same as
// paths on the local filesystem. For example, the following is a valid path
// to an image file inside an archive:
//
//	photos/holiday.zip/day1/beach.jpg
//
// The root of an archive is treated as a directory.
//
// The Expand() function turns a path into a list of image identifiers,
// descending into directories and archives as required.
package archivefs
