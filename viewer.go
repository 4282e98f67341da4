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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/imager/archivefs"
	"github.com/jetsetilly/imager/easyterm"
	"github.com/jetsetilly/imager/imageloader"
	"github.com/jetsetilly/imager/imagemanager"
	"github.com/jetsetilly/imager/logger"
	"github.com/jetsetilly/imager/paths"
	"github.com/jetsetilly/imager/remote"
)

// the viewer checks for the first image and for the slideshow delay this
// often
const frameInterval = 33 * time.Millisecond

// viewer is the single consumer of the image manager. key presses and remote
// commands are serialised by the run() loop.
type viewer struct {
	mgr     *imagemanager.Manager
	display Display

	// either channel can be nil
	keys     <-chan easyterm.Key
	commands <-chan remote.Command

	// slideshow delay. zero if there is no slideshow
	delay  time.Duration
	paused bool

	// used when expanding paths received by remote command
	recurse bool

	// nil until the first image has been displayed or after the playlist has
	// been reordered
	shown *imageloader.Image

	// when the last image was displayed
	shownAt time.Time

	// creates the file for a dump of the cache state
	dumpFile func(identifier string) (io.WriteCloser, string, error)
}

func newViewer(mgr *imagemanager.Manager, display Display) *viewer {
	return &viewer{
		mgr:      mgr,
		display:  display,
		dumpFile: createDumpFile,
	}
}

func createDumpFile(identifier string) (io.WriteCloser, string, error) {
	fn, err := paths.ResourcePath("dumps", paths.UniqueFilename("cache", identifier, ".dot"))
	if err != nil {
		return nil, "", err
	}
	f, err := os.Create(fn)
	if err != nil {
		return nil, "", err
	}
	return f, fn, nil
}

// run until the context is cancelled or the quit key is pressed.
func (vw *viewer) run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case k, ok := <-vw.keys:
			if !ok {
				vw.keys = nil
				continue
			}
			if !vw.key(k) {
				return nil
			}

		case cmd := <-vw.commands:
			vw.command(cmd)

		case <-ticker.C:
		}

		vw.update()
	}
}

// update displays the first image as soon as it is available and advances
// the slideshow.
func (vw *viewer) update() {
	if vw.shown == nil {
		if img, ok := vw.mgr.Reload(); ok {
			vw.show(img)
		}
		return
	}

	if vw.delay > 0 && !vw.paused && time.Since(vw.shownAt) >= vw.delay {
		vw.move(1)
	}
}

func (vw *viewer) show(img *imageloader.Image) {
	vw.shown = img
	vw.shownAt = time.Now()
	vw.display.Show(img, vw.mgr.Status())
}

// move to the next or previous image. if the image is not yet loaded the
// request is dropped
func (vw *viewer) move(dir int) {
	if img, ok := vw.mgr.Advance(dir); ok {
		vw.show(img)
	}
}

// reordering the playlist discards the displayed image
func (vw *viewer) reordered() {
	vw.shown = nil
}

// key returns false if the viewer should quit.
func (vw *viewer) key(k easyterm.Key) bool {
	switch k {
	case easyterm.Next:
		vw.move(1)
	case easyterm.Prev:
		vw.move(-1)
	case easyterm.Halt:
		vw.paused = !vw.paused
		if vw.paused {
			vw.display.Message("slideshow halted")
		} else {
			vw.shownAt = time.Now()
			vw.display.Message("slideshow resumed")
		}
	case easyterm.Random:
		vw.mgr.RandomOffset()
		vw.reordered()
	case easyterm.Dump:
		vw.dump()
	case easyterm.Status:
		vw.display.Message(vw.mgr.Status().String())
	case easyterm.Quit:
		return false
	}
	return true
}

func (vw *viewer) command(cmd remote.Command) {
	switch cmd.Action {
	case remote.Next:
		vw.move(1)
	case remote.Prev:
		vw.move(-1)
	case remote.Reload:
		vw.move(0)
	case remote.Random:
		vw.mgr.RandomOffset()
		vw.reordered()
	case remote.Append:
		ids, err := archivefs.Expand(cmd.Argument, vw.recurse)
		if err != nil {
			logger.Log(logger.Allow, "remote", err)
			return
		}
		vw.mgr.Append(ids...)
		vw.display.Message(fmt.Sprintf("%d images added", len(ids)))
	case remote.Sort:
		switch cmd.Argument {
		case remote.SortRandom:
			vw.mgr.RandomSort()
		case remote.SortLogical:
			vw.mgr.LogicalSort()
		case remote.SortDirectory:
			vw.mgr.DirectorySort()
		}
		vw.reordered()
	}
}

// dump a graph of the image manager status
func (vw *viewer) dump() {
	st := vw.mgr.Status()

	f, fn, err := vw.dumpFile(st.Current)
	if err != nil {
		logger.Log(logger.Allow, "imager", err)
		return
	}
	defer f.Close()

	memviz.Map(f, &st)
	vw.display.Message(fmt.Sprintf("cache state written to %s", fn))
}
