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

//go:build assertions

package assert

import "fmt"

// OnGoroutine panics if the calling goroutine does not have the ID.
func OnGoroutine(id uint64) {
	if g := GetGoRoutineID(); g != id {
		panic(fmt.Sprintf("assert: called from goroutine %d and not %d", g, id))
	}
}

// NotOnGoroutine panics if the calling goroutine has the ID.
func NotOnGoroutine(id uint64) {
	if g := GetGoRoutineID(); g == id {
		panic(fmt.Sprintf("assert: must not be called from goroutine %d", g))
	}
}
