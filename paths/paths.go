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
	"os"
	"path/filepath"

	"github.com/jetsetilly/imager/curated"
)

// Error pattern returned when the resource directory cannot be created.
const (
	NoResourcePath = "paths: %v"
)

const localResourcePath = ".imager"
const userResourcePath = "imager"

// ResourcePath returns the path of a resource, creating any parent
// directories as required. The final element of the resource list is
// assumed to be a filename and is not created. An empty final element will
// return the resource directory itself.
func ResourcePath(resource ...string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", curated.Errorf(NoResourcePath, err)
	}
	return resourcePath(base, resource...)
}

func resourcePath(base string, resource ...string) (string, error) {
	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)
	pth := filepath.Join(p...)

	dir := pth
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		dir = filepath.Dir(pth)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", curated.Errorf(NoResourcePath, err)
	}

	return pth, nil
}

func basePath() (string, error) {
	if fi, err := os.Stat(localResourcePath); err == nil && fi.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cnf, userResourcePath), nil
}
