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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The identifier is usually the
// image being displayed and is reduced to the base name without an
// extension. The extension argument should include the leading dot.
func UniqueFilename(prepend string, identifier string, extension string) string {
	return uniqueFilename(time.Now(), prepend, identifier, extension)
}

func uniqueFilename(n time.Time, prepend string, identifier string, extension string) string {
	timestamp := n.Format("20060102_150405")

	id := strings.TrimSpace(identifier)
	if id != "" {
		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))
		id = strings.Map(func(r rune) rune {
			switch r {
			case ' ', '/', '\\', ':':
				return '_'
			}
			return r
		}, id)
	}

	if id == "" || id == "." {
		return fmt.Sprintf("%s_%s%s", prepend, timestamp, extension)
	}
	return fmt.Sprintf("%s_%s_%s%s", prepend, id, timestamp, extension)
}
