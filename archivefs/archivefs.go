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

package archivefs

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/imager/curated"
	"github.com/jetsetilly/imager/logger"
)

// ReadFile returns the contents of the named file. The file can be inside an
// archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	err := afs.Set(filename)
	if err != nil {
		return nil, err
	}
	defer afs.Close()
	return afs.ReadAll()
}

// IsDirectory is returned by Expand() when the name refers to a directory but
// recursion has not been requested.
const IsDirectory = "archivefs: %s: is a directory (forgot -recurse?)"

// IsURL returns true if the name looks like an http or https URL.
func IsURL(name string) bool {
	u, err := url.Parse(name)
	if err != nil {
		return false
	}
	s := strings.ToLower(u.Scheme)
	return s == "http" || s == "https"
}

// Expand the name into a list of identifiers. A file or a URL expands to
// itself. A directory or archive expands to the files it contains but only
// if recurse is true. Otherwise an IsDirectory error is returned.
//
// Children that can not be expanded are logged and skipped.
func Expand(name string, recurse bool) ([]string, error) {
	if IsURL(name) {
		return []string{name}, nil
	}

	var afs Path
	err := afs.Set(name)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	defer afs.Close()

	if !afs.IsDir() {
		return []string{name}, nil
	}

	if !recurse {
		return nil, curated.Errorf(IsDirectory, name)
	}

	nodes, err := afs.List()
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	var ids []string
	for _, n := range nodes {
		c, err := Expand(filepath.Join(name, n.Name), recurse)
		if err != nil {
			logger.Log(logger.Allow, "archivefs", err)
			continue
		}
		ids = append(ids, c...)
	}

	return ids, nil
}
