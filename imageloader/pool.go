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

package imageloader

import (
	"image"
	"sync"
)

// pool of RGBA buffers grouped by dimension.
type pool struct {
	crit    sync.Mutex
	buckets map[image.Point][]*image.RGBA

	// maximum number of buffers for each dimension
	maxPerBucket int
}

func newPool(maxPerBucket int) *pool {
	return &pool{
		buckets:      make(map[image.Point][]*image.RGBA),
		maxPerBucket: maxPerBucket,
	}
}

// get returns a cleared buffer of the specified size.
func (p *pool) get(width, height int) *image.RGBA {
	key := image.Point{X: width, Y: height}

	p.crit.Lock()
	bucket := p.buckets[key]
	if len(bucket) == 0 {
		p.crit.Unlock()
		return image.NewRGBA(image.Rect(0, 0, width, height))
	}
	buf := bucket[len(bucket)-1]
	p.buckets[key] = bucket[:len(bucket)-1]
	p.crit.Unlock()

	clear(buf.Pix)
	return buf
}

// put returns the buffer to the pool. The buffer is discarded if the bucket
// is full.
func (p *pool) put(buf *image.RGBA) {
	if buf == nil {
		return
	}

	key := buf.Bounds().Size()

	p.crit.Lock()
	defer p.crit.Unlock()

	if len(p.buckets[key]) >= p.maxPerBucket {
		return
	}
	p.buckets[key] = append(p.buckets[key], buf)
}

// size returns the number of buffers held by the pool.
func (p *pool) size() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}
