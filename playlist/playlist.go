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

package playlist

import (
	"slices"

	"github.com/jetsetilly/imager/random"
	"github.com/jetsetilly/imager/sema"
)

// Wrap returns v reduced to the range [0,n). Negative values of v wrap
// around from the end of the range. For example, Wrap(-1, 5) is 4 and
// Wrap(7, 5) is 2.
//
// Returns zero if n is zero or less.
func Wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Critical is the part of the Playlist that is protected by the critical
// section. It is only available through the Playlist.Borrow() function and
// should not be retained after the borrowing function returns.
type Critical struct {
	entries []string
	cursor  int
}

// Len returns the number of entries in the playlist.
func (c *Critical) Len() int {
	return len(c.entries)
}

// At returns the identifier at index i. The index must be in range.
func (c *Critical) At(i int) string {
	return c.entries[i]
}

// Cursor returns the index of the current entry.
func (c *Critical) Cursor() int {
	return c.cursor
}

// Index returns the index that is offset entries away from the cursor,
// wrapping around either end of the playlist.
func (c *Critical) Index(offset int) int {
	return Wrap(c.cursor+offset, len(c.entries))
}

// Move the cursor by delta entries, wrapping around either end of the
// playlist.
func (c *Critical) Move(delta int) {
	c.cursor = c.Index(delta)
}

// Append identifiers to the end of the playlist.
func (c *Critical) Append(ids ...string) {
	c.entries = append(c.entries, ids...)
}

// Remove the entry at index i. The order of the remaining entries is
// preserved. If the removed entry is before the cursor, the cursor is moved
// so that it still refers to the same entry.
func (c *Critical) Remove(i int) string {
	id := c.entries[i]
	c.entries = slices.Delete(c.entries, i, i+1)
	if i < c.cursor {
		c.cursor--
	}
	c.cursor = Wrap(c.cursor, len(c.entries))
	return id
}

// Playlist is an ordered list of identifiers with a cursor.
type Playlist struct {
	crit sema.Mutex
	c    Critical
	rnd  *random.Random
}

// NewPlaylist is the preferred method of initialisation for the Playlist
// type. The Random instance is used by RandomSort() and RandomOffset(). If it
// is nil a new instance is created.
func NewPlaylist(rnd *random.Random) *Playlist {
	if rnd == nil {
		rnd = random.NewRandom()
	}
	return &Playlist{rnd: rnd}
}

// Borrow gives the function exclusive access to the playlist. The Critical
// instance should not be retained once the function returns. Calling any of
// the Playlist functions from inside the borrowing function will deadlock.
func (pl *Playlist) Borrow(f func(c *Critical)) {
	pl.crit.Do(func() {
		f(&pl.c)
	})
}

// Append identifiers to the end of the playlist.
func (pl *Playlist) Append(ids ...string) {
	if len(ids) == 0 {
		return
	}
	pl.Borrow(func(c *Critical) {
		c.Append(ids...)
	})
}

// Len returns the number of entries in the playlist.
func (pl *Playlist) Len() int {
	var n int
	pl.Borrow(func(c *Critical) {
		n = c.Len()
	})
	return n
}

// Cursor returns the index of the current entry.
func (pl *Playlist) Cursor() int {
	var n int
	pl.Borrow(func(c *Critical) {
		n = c.Cursor()
	})
	return n
}

// Current returns the identifier at the cursor. The boolean is false if the
// playlist is empty.
func (pl *Playlist) Current() (string, bool) {
	var id string
	var ok bool
	pl.Borrow(func(c *Critical) {
		if c.Len() > 0 {
			id = c.At(c.Cursor())
			ok = true
		}
	})
	return id, ok
}

// Entries returns a copy of the playlist.
func (pl *Playlist) Entries() []string {
	var e []string
	pl.Borrow(func(c *Critical) {
		e = slices.Clone(c.entries)
	})
	return e
}

// Sort reorders the playlist with the Ordering. The cursor is not changed.
func (pl *Playlist) Sort(o Ordering) {
	pl.Borrow(func(c *Critical) {
		o(c.entries)
	})
}

// RandomSort shuffles the playlist.
func (pl *Playlist) RandomSort() {
	pl.Sort(RandomOrder(pl.rnd))
}

// LogicalSort sorts the playlist with LogicalOrder.
func (pl *Playlist) LogicalSort() {
	pl.Sort(LogicalOrder)
}

// DirectorySort sorts the playlist with DirectoryOrder.
func (pl *Playlist) DirectorySort() {
	pl.Sort(DirectoryOrder)
}

// RandomOffset moves the cursor by a random amount. Does nothing if the
// playlist is empty.
func (pl *Playlist) RandomOffset() {
	pl.Borrow(func(c *Critical) {
		if c.Len() == 0 {
			return
		}
		c.Move(pl.rnd.Intn(c.Len()))
	})
}
