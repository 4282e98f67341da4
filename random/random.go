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

package random

import (
	"math/rand"
	"sync"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a source of random numbers. Safe for concurrent use.
type Random struct {
	crit sync.Mutex
	rnd  *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful when random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{}
}

// the RNG is created on first use so that ZeroSeed can be set after
// initialisation. must be called with the critical section held
func (rnd *Random) rand() *rand.Rand {
	if rnd.rnd == nil {
		if rnd.ZeroSeed {
			rnd.rnd = rand.New(rand.NewSource(0))
		} else {
			rnd.rnd = rand.New(rand.NewSource(baseSeed))
		}
	}
	return rnd.rnd
}

// Intn returns a random number in the range [0,n). The value of n must be
// greater than zero.
func (rnd *Random) Intn(n int) int {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	return rnd.rand().Intn(n)
}

// Shuffle pseudo-randomises the order of n elements. The swap function swaps
// the elements with indexes i and j.
func (rnd *Random) Shuffle(n int, swap func(i, j int)) {
	rnd.crit.Lock()
	defer rnd.crit.Unlock()
	rnd.rand().Shuffle(n, swap)
}
