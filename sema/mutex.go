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

package sema

import "sync"

// Mutex is a non-reentrant mutual exclusion lock. The zero value is an
// unlocked mutex.
type Mutex struct {
	mu sync.Mutex
}

// Lock the mutex. Blocks until the mutex is available.
func (m *Mutex) Lock() {
	m.mu.Lock()
}

// Unlock the mutex.
func (m *Mutex) Unlock() {
	m.mu.Unlock()
}

// Do runs the function with the mutex held. The mutex is released on every
// exit path from the function, including a panic.
func (m *Mutex) Do(f func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f()
}
