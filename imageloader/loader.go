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
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/jetsetilly/imager/curated"
)

// Sentinal error patterns. Every error returned by Load() is one of these.
const (
	FetchFailed       = "imageloader: %s: %v"
	NoData            = "imageloader: %s: no data"
	UnsupportedFormat = "imageloader: %s: unsupported format (%s)"
	DecodeFailed      = "imageloader: %s: decode: %v"
)

// the MIME types that will be decoded
var supported = []string{
	"image/png",
	"image/jpeg",
	"image/gif",
	"image/bmp",
	"image/tiff",
	"image/webp",
}

// number of buffers of each size kept by the pool
const poolBucketSize = 4

// Loader fetches and decodes images.
type Loader struct {
	source Source
	pool   *pool

	// images larger than this in either dimension are scaled down, keeping
	// the aspect ratio. a value of zero means images are never scaled
	MaxDimension int

	outstanding atomic.Int64
}

// NewLoader is the preferred method of initialisation for the Loader type. If
// the Source is nil a new Fetcher is used.
func NewLoader(src Source) *Loader {
	if src == nil {
		src = NewFetcher()
	}
	return &Loader{
		source: src,
		pool:   newPool(poolBucketSize),
	}
}

// Load fetches and decodes the image with the identifier. All errors are
// permanent for the identifier. Safe to call from any goroutine.
func (ld *Loader) Load(identifier string) (*Image, error) {
	data, err := ld.source.Fetch(identifier)
	if err != nil {
		return nil, curated.Errorf(FetchFailed, identifier, err)
	}
	defer data.Close()

	if len(data.Bytes) == 0 {
		return nil, curated.Errorf(NoData, identifier)
	}

	mt := mimetype.Detect(data.Bytes)
	if !isSupported(mt) {
		return nil, curated.Errorf(UnsupportedFormat, identifier, mt.String())
	}

	src, format, err := image.Decode(bytes.NewReader(data.Bytes))
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, identifier, err)
	}

	img := &Image{
		Identifier: identifier,
		Format:     format,
		Pixels:     ld.convert(src),
	}
	ld.outstanding.Add(1)

	return img, nil
}

func isSupported(mt *mimetype.MIME) bool {
	for _, s := range supported {
		if mt.Is(s) {
			return true
		}
	}
	return false
}

// convert decoded image to a pooled RGBA buffer, scaling if necessary.
func (ld *Loader) convert(src image.Image) *image.RGBA {
	b := src.Bounds()
	w, h := fit(b.Dx(), b.Dy(), ld.MaxDimension)

	dst := ld.pool.get(w, h)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	return dst
}

// fit returns the dimensions of an image scaled so that neither dimension is
// larger than limit. the aspect ratio is preserved as far as possible.
func fit(width, height, limit int) (int, int) {
	if limit <= 0 || (width <= limit && height <= limit) {
		return width, height
	}
	if width >= height {
		return limit, max(1, height*limit/width)
	}
	return max(1, width*limit/height), limit
}

// Release the image. The image should not be used after it has been released.
// Releasing an image more than once or releasing a nil image has no effect.
func (ld *Loader) Release(img *Image) {
	if img == nil || img.Pixels == nil {
		return
	}
	ld.pool.put(img.Pixels)
	img.Pixels = nil
	ld.outstanding.Add(-1)
}

// Outstanding returns the number of images that have been loaded but not yet
// released.
func (ld *Loader) Outstanding() int {
	return int(ld.outstanding.Load())
}
