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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/imager/assert"
	"github.com/jetsetilly/imager/imageloader"
	"github.com/jetsetilly/imager/logger"
	"github.com/jetsetilly/imager/playlist"
	"github.com/jetsetilly/imager/sema"
	"github.com/jetsetilly/imager/waitq"
)

// ImageLoader is the interface to the component that decodes images. Load()
// is only ever called from the worker goroutine. Release() can be called from
// any goroutine.
type ImageLoader interface {
	Load(identifier string) (*imageloader.Image, error)
	Release(img *imageloader.Image)
}

// default values for a new Manager.
const (
	DefaultWindowSize   = 2
	DefaultPollInterval = 100 * time.Millisecond
)

// the two windows. the value of the direction for each window is given by
// the direction() function
const (
	back = iota
	forward
)

func direction(side int) int {
	if side == back {
		return -1
	}
	return 1
}

// Manager prefetches images either side of the playlist cursor.
//
// Each window normally holds at most the window size. Once every entry in
// the playlist is loaded the windows are no longer trimmed and one window may
// hold more than the window size, so Status() and LoadCount() can report
// more than the window size for a side, but never more images than there are
// entries in the playlist.
type Manager struct {
	loader   ImageLoader
	playlist *playlist.Playlist

	windowSize   int
	pollInterval time.Duration

	// the following fields are only accessed inside the playlist's critical
	// section
	current   *imageloader.Image
	loadCount int

	// the two windows. see the back and forward constants
	cache [2]*waitq.Queue[*imageloader.Image]

	// posted once to stop the worker
	shutdown *sema.Semaphore

	// closed by the worker once it has finished draining
	done chan struct{}

	state     atomic.Int32
	startOnce sync.Once
	stopOnce  sync.Once

	// goroutine ID of the worker. zero if the worker has not started
	workerID atomic.Uint64
}

// Option changes the configuration of a new Manager.
type Option func(*Manager)

// WithPlaylist sets the playlist used by the Manager. Without this option the
// Manager creates its own empty playlist.
func WithPlaylist(pl *playlist.Playlist) Option {
	return func(m *Manager) {
		m.playlist = pl
	}
}

// WithWindowSize sets the target number of images in each window. Values
// less than one are ignored.
func WithWindowSize(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.windowSize = n
		}
	}
}

// WithPollInterval sets how long the worker sleeps when there is no work to
// do. Values of zero or less are ignored.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// NewManager is the preferred method of initialisation for the Manager type.
// The worker is not started until Start() is called.
func NewManager(loader ImageLoader, opts ...Option) *Manager {
	m := &Manager{
		loader:       loader,
		windowSize:   DefaultWindowSize,
		pollInterval: DefaultPollInterval,
		shutdown:     sema.NewSemaphore(0),
		done:         make(chan struct{}),
	}

	for _, o := range opts {
		o(m)
	}

	if m.playlist == nil {
		m.playlist = playlist.NewPlaylist(nil)
	}

	for i := range m.cache {
		m.cache[i] = waitq.NewQueue[*imageloader.Image](0)
	}

	return m
}

// State returns the current state of the worker.
func (m *Manager) State() State {
	return State(m.state.Load())
}

// Start the worker. Calling Start() more than once has no effect. Calling
// Start() after Shutdown() has no effect.
func (m *Manager) Start() {
	m.startOnce.Do(func() {
		if !m.state.CompareAndSwap(int32(Idle), int32(Running)) {
			return
		}
		go m.run()
	})
}

// Shutdown stops the worker and waits for it to release every image it, or
// the consumer, holds. Images returned to the consumer must not be used after
// Shutdown() has been called.
//
// Calling Shutdown() more than once has no effect. It is safe to call
// Shutdown() if Start() was never called.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() {
		if m.state.CompareAndSwap(int32(Idle), int32(Stopped)) {
			return
		}
		m.shutdown.Post()
		<-m.done
	})
}

// run is the worker loop.
func (m *Manager) run() {
	m.workerID.Store(assert.GetGoRoutineID())
	defer close(m.done)

	// the first pass is made without waiting
	var wait time.Duration

	for !m.shutdown.WaitTimeout(wait) {
		wait = m.pollInterval

		// more work is likely to remain after any progress so check again
		// without waiting
		if m.step() {
			wait = 0
		}
	}

	m.state.Store(int32(Draining))
	m.drain()
	m.state.Store(int32(Stopped))
}

// step makes one pass of the prefetch work. returns true if anything changed.
func (m *Manager) step() bool {
	if m.loadCurrent() {
		return true
	}

	// evicting before loading means the number of loaded images never
	// exceeds the total size of the windows plus the current image
	progress := m.evict()

	for _, side := range [...]int{back, forward} {
		if m.fillWindow(side) {
			progress = true
		}
	}

	return progress
}

// load an image. must not be called from inside the critical section.
func (m *Manager) load(id string) (*imageloader.Image, error) {
	assert.OnGoroutine(m.workerID.Load())
	return m.loader.Load(id)
}

// release an image if it is not nil. must not be called from inside the
// critical section.
func (m *Manager) release(imgs ...*imageloader.Image) {
	for _, img := range imgs {
		if img != nil {
			m.loader.Release(img)
		}
	}
}

// remove the unloadable entry at idx. must be called from inside the
// critical section.
func (m *Manager) remove(c *playlist.Critical, idx int, err error) {
	id := c.Remove(idx)
	logger.Logf(logger.Allow, "imagemanager", "removing %s as it is unloadable: %v", id, err)
}

// loadCurrent loads the image at the cursor if there is no current image.
func (m *Manager) loadCurrent() bool {
	var id string
	var need bool
	m.playlist.Borrow(func(c *playlist.Critical) {
		if m.current == nil && c.Len() > 0 {
			id = c.At(c.Cursor())
			need = true
		}
	})
	if !need {
		return false
	}

	img, err := m.load(id)

	var discard *imageloader.Image
	m.playlist.Borrow(func(c *playlist.Critical) {
		// the consumer or a change to the playlist may have made the load
		// unnecessary
		if m.current != nil || c.Len() == 0 || c.At(c.Cursor()) != id {
			discard = img
			return
		}

		if err != nil {
			m.remove(c, c.Cursor(), err)
			return
		}

		m.current = img
		m.loadCount++
	})
	m.release(discard)

	return true
}

// evict images from the far end of any window that is larger than the
// target size.
func (m *Manager) evict() bool {
	var imgs []*imageloader.Image
	m.playlist.Borrow(func(c *playlist.Critical) {
		// while the entire playlist is loaded the windows are allowed to
		// grow. moving through the playlist rotates images from one window
		// to the other
		if m.loadCount >= c.Len() {
			return
		}

		for _, side := range [...]int{back, forward} {
			for m.cache[side].Count() > m.windowSize {
				img, _ := m.cache[side].PopBack(0)
				imgs = append(imgs, img)
				m.loadCount--
			}
		}
	})
	m.release(imgs...)
	return len(imgs) > 0
}

// fillWindow loads one image into the window if it is smaller than the
// target size.
func (m *Manager) fillWindow(side int) bool {
	var id string
	var idx, n int
	var need bool

	m.playlist.Borrow(func(c *playlist.Critical) {
		// the current image is always loaded first. the windows are
		// meaningless without it
		if m.current == nil {
			return
		}

		// the entire playlist is loaded or the opposite window has grown
		// since the last eviction
		if m.loadCount >= c.Len() || m.loadCount > 2*m.windowSize {
			return
		}

		n = m.cache[side].Count()
		if n < m.windowSize {
			idx = c.Index((n + 1) * direction(side))
			id = c.At(idx)
			need = true
		}
	})

	if !need {
		return false
	}

	img, err := m.load(id)

	var discard *imageloader.Image
	m.playlist.Borrow(func(c *playlist.Critical) {
		// the image must still be wanted at the same position. the window
		// must not have changed size and the entry at that position must be
		// the same
		if m.current == nil || m.loadCount >= c.Len() || m.loadCount > 2*m.windowSize ||
			m.cache[side].Count() != n ||
			c.Index((n+1)*direction(side)) != idx || c.At(idx) != id {
			discard = img
			return
		}

		if err != nil {
			m.remove(c, idx, err)
			return
		}

		m.cache[side].PushBack(img)
		m.loadCount++
	})
	m.release(discard)

	return true
}

// empty the windows and the current image. must be called from inside the
// critical section. the images are returned so that they can be released
// once the critical section has been left.
func (m *Manager) empty(sides ...int) []*imageloader.Image {
	var imgs []*imageloader.Image
	for _, side := range sides {
		for {
			img, ok := m.cache[side].PopFront(0)
			if !ok {
				break
			}
			imgs = append(imgs, img)
			m.loadCount--
		}
	}
	return imgs
}

// flush every image. the worker will start loading again from the cursor.
func (m *Manager) flush() {
	var imgs []*imageloader.Image
	m.playlist.Borrow(func(_ *playlist.Critical) {
		imgs = m.empty(back, forward)
		if m.current != nil {
			imgs = append(imgs, m.current)
			m.current = nil
			m.loadCount--
		}
	})
	m.release(imgs...)
}

// drain is called by the worker when it is stopping.
func (m *Manager) drain() {
	m.flush()
}

// Advance moves through the playlist in the direction given by dir and
// returns the new current image. A positive value moves forward and a
// negative value moves backwards. A value of zero returns the current
// image without moving.
//
// Advance never blocks. The boolean is false if the image is not yet
// available, in which case the cursor does not move.
func (m *Manager) Advance(dir int) (*imageloader.Image, bool) {
	assert.NotOnGoroutine(m.workerID.Load())

	var img *imageloader.Image

	m.playlist.Borrow(func(c *playlist.Critical) {
		if dir == 0 {
			img = m.current
			return
		}

		side, delta := forward, 1
		if dir < 0 {
			side, delta = back, -1
		}
		opposite := 1 - side

		next, ok := m.cache[side].PopFront(0)
		if !ok {
			// if the entire playlist is loaded then the image we want is at
			// the far end of the opposite window
			if m.current == nil || m.loadCount < c.Len() {
				return
			}

			// a playlist of one image wraps around to itself
			if c.Len() == 1 {
				img = m.current
				return
			}

			next, ok = m.cache[opposite].PopBack(0)
			if !ok {
				return
			}
		}

		if m.current != nil {
			m.cache[opposite].PushFront(m.current)
		}
		m.current = next
		c.Move(delta)
		img = next
	})

	return img, img != nil
}

// Next is the same as Advance(1).
func (m *Manager) Next() (*imageloader.Image, bool) {
	return m.Advance(1)
}

// Prev is the same as Advance(-1).
func (m *Manager) Prev() (*imageloader.Image, bool) {
	return m.Advance(-1)
}

// Reload is the same as Advance(0).
func (m *Manager) Reload() (*imageloader.Image, bool) {
	return m.Advance(0)
}
