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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes to the command line, where the first
// non-flag argument selects between a list of sub-modes.
//
// At it's simplest it can be used as a replacement for the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	recurse := md.AddBool("recurse", false, "descend into directories")
//	_, _ = md.Parse()
//
// Sub-modes are added with AddSubModes(). The first sub-mode added is the
// default and is selected if the first argument does not name a sub-mode.
// Comparisons are case insensitive and the selected mode is always upper
// case.
//
//	md.AddSubModes("view", "list", "version")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "VIEW":
//		md.NewMode()
//		delay := md.AddDuration("delay", 0, "slideshow delay")
//		p, err = md.Parse()
//		...
//	}
//
// Calling NewMode() discards any flags that have been added and makes the
// arguments that remained after the previous Parse() available for parsing.
// The Path() function returns all the modes selected so far, separated by a
// slash.
//
// Parse() returns ParseHelp if the -help flag was present, after printing
// the available flags and sub-modes to the Output writer. Callers should
// treat this as a reason to exit without error.
package modalflag
