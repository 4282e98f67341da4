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

// Package paths contains functions to prepare paths for files written by the
// application.
//
// Files are written under a resource directory. If a directory named
// ".imager" exists in the current working directory then that is used.
// Otherwise the "imager" directory in the user's configuration directory is
// used (see os.UserConfigDir() for details of what that means on each
// platform).
//
// Sub-directories of the resource directory are created as required.
package paths
