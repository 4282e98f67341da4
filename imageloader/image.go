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
	"fmt"
	"image"
)

// Image is a decoded image.
type Image struct {
	// the identifier the image was loaded from
	Identifier string

	// the format the image was encoded in. eg. "png" or "jpeg"
	Format string

	// decoded pixels. nil after the image has been released
	Pixels *image.RGBA
}

// Width of image in pixels.
func (img *Image) Width() int {
	if img.Pixels == nil {
		return 0
	}
	return img.Pixels.Bounds().Dx()
}

// Height of image in pixels.
func (img *Image) Height() int {
	if img.Pixels == nil {
		return 0
	}
	return img.Pixels.Bounds().Dy()
}

func (img *Image) String() string {
	return fmt.Sprintf("%s (%s %dx%d)", img.Identifier, img.Format, img.Width(), img.Height())
}
