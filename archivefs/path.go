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
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Node represents a single entry in a directory listing.
type Node struct {
	Name string

	// a directory has the the field of IsDir set to true
	IsDir bool

	// a recognised archive file has IsArchive set to true. note that an
	// archive file is also considered to be directory
	IsArchive bool
}

func (e Node) String() string {
	return e.Name
}

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a file and the file itself
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// Dir returns all but the last element of path.
func (afs Path) Dir() string {
	if afs.isDir {
		return afs.current
	}
	return filepath.Dir(afs.current)
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// ReadAll returns the contents of the file previously set by the Set()
// function.
func (afs Path) ReadAll() ([]byte, error) {
	if afs.isDir {
		return nil, fmt.Errorf("archivefs: read: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(filepath.ToSlash(filepath.Join(afs.inZipPath, afs.inZipFile)))
		if err != nil {
			return nil, fmt.Errorf("archivefs: read: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("archivefs: read: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(afs.current)
	if err != nil {
		return nil, fmt.Errorf("archivefs: read: %w", err)
	}
	return b, nil
}

// Open returns an io.ReadSeeker for the file previously set by the Set()
// function, along with the size of the data.
func (afs Path) Open() (io.ReadSeeker, int, error) {
	b, err := afs.ReadAll()
	if err != nil {
		return nil, 0, err
	}
	return bytes.NewReader(b), len(b), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// isArchive returns true if the file at path can be opened as a zip archive.
func isArchive(path string) bool {
	zf, err := zip.OpenReader(path)
	if err != nil {
		return false
	}
	zf.Close()
	return true
}

// List returns the child entries for the current path location. If the current
// path is a file then the list will be the contents of the containing
// directory of that file.
//
// Directories are listed first. Within those two groups entries are in
// alphabetical order, ignoring case.
func (afs *Path) List() ([]Node, error) {
	var ent []Node

	if afs.zf != nil {
		for _, f := range afs.zf.File {
			// comparing the parts of the name like this is better than
			// filepath.Dir() because that will add path components that make
			// it awkward to compare with afs.inZipPath
			flst := strings.Split(filepath.Clean(f.Name), string(filepath.Separator))
			fdir := filepath.Join(flst[:len(flst)-1]...)
			if fdir != afs.inZipPath {
				continue
			}

			fi := f.FileInfo()
			ent = append(ent, Node{
				Name:  fi.Name(),
				IsDir: fi.IsDir(),
			})
		}
	} else {
		path := afs.current
		if !afs.isDir {
			path = filepath.Dir(path)
		}

		dir, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("archivefs: list: %w", err)
		}

		for _, d := range dir {
			p := filepath.Join(path, d.Name())

			// using os.Stat() to get file information otherwise links to
			// directories do not have the IsDir() property
			fi, err := os.Stat(p)
			if err != nil {
				continue
			}

			switch {
			case fi.IsDir():
				ent = append(ent, Node{Name: d.Name(), IsDir: true})
			case isArchive(p):
				ent = append(ent, Node{Name: d.Name(), IsDir: true, IsArchive: true})
			default:
				ent = append(ent, Node{Name: d.Name()})
			}
		}
	}

	sort.SliceStable(ent, func(i int, j int) bool {
		if ent[i].IsDir != ent[j].IsDir {
			return ent[i].IsDir
		}
		return strings.ToLower(ent[i].Name) < strings.ToLower(ent[j].Name)
	})

	return ent, nil
}

// Set the path. Paths can be to a file or directory on the local filesystem
// or to a file or directory inside a zip archive.
func (afs *Path) Set(path string) error {
	afs.Close()

	// clean path and split into parts
	path = filepath.Clean(path)
	lst := strings.Split(path, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	path = ""

	for _, l := range lst {
		path = filepath.Join(path, l)

		if afs.zf != nil {
			p := filepath.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(filepath.ToSlash(p))
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

			continue
		}

		fi, err := os.Stat(path)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(path)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			continue
		}
		afs.zf = nil

		if !errors.Is(err, zip.ErrFormat) && !errors.Is(err, io.EOF) {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}
	}

	afs.current = filepath.Clean(path)

	return nil
}
