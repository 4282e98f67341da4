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

// Package logger is the central log for the application. Entries are made
// with Log() and Logf() and are tagged, usually with the name of the package
// making the entry:
//
//	logger.Logf(logger.Allow, "imagemanager", "removing %s: %v", id, err)
//
// The first argument is a Permission. Logging only takes place if the
// Permission allows it. The Allow value always allows logging and is the
// value used by most callers.
//
// The log is bounded and older entries are discarded. Entries that are
// identical to the immediately preceding entry are folded into it and a
// repeat count is shown instead.
//
// The log can be echoed to an io.Writer as it is written with SetEcho().
// The Colorizer type can be used to wrap the echo writer so that
// multi-line entries are easier to read in a terminal.
//
// All functions are safe to call from any goroutine.
package logger
