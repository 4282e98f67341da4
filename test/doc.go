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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failed test but allow the test to
// continue. The Demand*() functions are fatal to the test. ExpectSuccess()
// and ExpectFailure() test for success under generic conditions. The
// documentation for those functions describe the currently supported types.
//
// It is worth describing how the success and failure functions handle the
// nil type because it is not obvious. The nil type is considered a success
// and consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This is because of how errors usually work (nil to indicate no
// error).
//
// Optional tags can be given to all functions. These are printed before the
// failure message and help identify which iteration of a table test failed.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output. The RingWriter type is similar but only keeps the
// most recent output.
package test
