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

package imagemanager

import (
	"fmt"

	"github.com/jetsetilly/imager/imageloader"
	"github.com/jetsetilly/imager/playlist"
)

// Append identifiers to the end of the playlist.
func (m *Manager) Append(ids ...string) {
	if len(ids) == 0 {
		return
	}

	var imgs []*imageloader.Image
	m.playlist.Borrow(func(c *playlist.Critical) {
		// a window that wraps around the end of the playlist no longer
		// holds the neighbours of the cursor once the playlist has grown
		if n := c.Len(); n > 0 {
			if c.Cursor()+m.cache[forward].Count() >= n {
				imgs = append(imgs, m.empty(forward)...)
			}
			if c.Cursor()-m.cache[back].Count() < 0 {
				imgs = append(imgs, m.empty(back)...)
			}
		}
		c.Append(ids...)
	})
	m.release(imgs...)
}

// RandomSort shuffles the playlist. All loaded images are released and the
// worker starts again from the cursor, which is not moved.
func (m *Manager) RandomSort() {
	m.playlist.RandomSort()
	m.flush()
}

// LogicalSort sorts the playlist with playlist.LogicalOrder. All loaded images
// are released and the worker starts again from the cursor, which is not
// moved.
func (m *Manager) LogicalSort() {
	m.playlist.LogicalSort()
	m.flush()
}

// DirectorySort sorts the playlist with playlist.DirectoryOrder. All loaded
// images are released and the worker starts again from the cursor, which is
// not moved.
func (m *Manager) DirectorySort() {
	m.playlist.DirectorySort()
	m.flush()
}

// RandomOffset moves the cursor to a random entry in the playlist. All loaded
// images are released and the worker starts again from the new cursor.
func (m *Manager) RandomOffset() {
	m.playlist.RandomOffset()
	m.flush()
}

// ImageCount returns the number of entries in the playlist.
func (m *Manager) ImageCount() int {
	return m.playlist.Len()
}

// LoadCount returns the number of images currently loaded, including the
// current image.
func (m *Manager) LoadCount() int {
	var n int
	m.playlist.Borrow(func(_ *playlist.Critical) {
		n = m.loadCount
	})
	return n
}

// Entries returns a copy of the playlist.
func (m *Manager) Entries() []string {
	return m.playlist.Entries()
}

// Status is a snapshot of the Manager.
type Status struct {
	State     string   `json:"state"`
	Count     int      `json:"count"`
	Cursor    int      `json:"cursor"`
	LoadCount int      `json:"loadCount"`
	Current   string   `json:"current,omitempty"`
	Back      []string `json:"back"`
	Forward   []string `json:"forward"`
}

func (s Status) String() string {
	if s.Count == 0 {
		return fmt.Sprintf("[%s] empty playlist", s.State)
	}
	return fmt.Sprintf("[%d/%d] %s (%d loaded)", s.Cursor+1, s.Count, s.Current, s.LoadCount)
}

func identifiers(imgs []*imageloader.Image) []string {
	ids := make([]string, len(imgs))
	for i, img := range imgs {
		ids[i] = img.Identifier
	}
	return ids
}

// Status returns a snapshot of the Manager.
func (m *Manager) Status() Status {
	var s Status
	m.playlist.Borrow(func(c *playlist.Critical) {
		s = Status{
			State:     m.State().String(),
			Count:     c.Len(),
			Cursor:    c.Cursor(),
			LoadCount: m.loadCount,
			Back:      identifiers(m.cache[back].Items()),
			Forward:   identifiers(m.cache[forward].Items()),
		}
		if m.current != nil {
			s.Current = m.current.Identifier
		}
	})
	return s
}
