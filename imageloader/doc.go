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

// Package imageloader fetches and decodes images. An image is identified by
// a string that can be a path on the local filesystem, a path into a zip
// archive (see the archivefs package) or an http/https URL.
//
// Local files are memory mapped where the platform allows it. The type of the
// data is sniffed before decoding and only recognised image formats are
// decoded. Supported formats are PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Decoded images are always converted to RGBA. The pixel buffers come from a
// pool and are returned to the pool by Release(). Every image returned by
// Load() should be passed to Release() exactly once.
package imageloader
