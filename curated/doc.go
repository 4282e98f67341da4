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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Curated errors are created with the Errorf() function,
// which takes the same arguments as fmt.Errorf():
//
//	e := curated.Errorf("imageloader: unsupported format: %s", mime)
//
//	if curated.Is(e, "imageloader: unsupported format: %s") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the chain of curated errors:
//
//	f := curated.Errorf("imagemanager: %v", e)
//
//	if curated.Has(f, "imageloader: unsupported format: %s") {
//		fmt.Println("true")
//	}
//
// Patterns that callers are expected to test for should be stored as an
// exported const string in the package that creates the error.
//
// The Error() function removes duplicate adjacent parts from the error
// message, so that wrapping an error with the same prefix at more than one
// level does not result in messages such as:
//
//	imageloader: imageloader: file not found
//
// Chain parts are separated by the sub-string ": " as suggested on p239 of
// "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors that wrap other errors also implement Unwrap() so the
// standard errors.Is() and errors.As() functions see through them.
package curated
