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

package random_test

import (
	"testing"

	"github.com/jetsetilly/imager/random"
	"github.com/jetsetilly/imager/test"
)

func TestZeroSeed(t *testing.T) {
	a := random.NewRandom()
	b := random.NewRandom()
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}

	sa := []int{0, 1, 2, 3, 4, 5, 6, 7}
	sb := []int{0, 1, 2, 3, 4, 5, 6, 7}
	a.Shuffle(len(sa), func(i, j int) { sa[i], sa[j] = sa[j], sa[i] })
	b.Shuffle(len(sb), func(i, j int) { sb[i], sb[j] = sb[j], sb[i] })
	for i := range sa {
		test.ExpectEquality(t, sa[i], sb[i])
	}
}

func TestRange(t *testing.T) {
	r := random.NewRandom()
	for rangeCount := 0; rangeCount < 1000; rangeCount++ {
		v := r.Intn(7)
		test.DemandSuccess(t, v >= 0 && v < 7)
	}
}
