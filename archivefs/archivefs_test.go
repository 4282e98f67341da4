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

package archivefs_test

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/imager/archivefs"
	"github.com/jetsetilly/imager/curated"
	"github.com/jetsetilly/imager/test"
)

// testdir creates the following structure in a temporary directory:
//
//	testfile
//	testarchive.zip
//		archivefile1
//		archivefile2
//		archivedir/
//			archivefile3
//	subdir/
//		subfile
func testdir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "testfile"), []byte("testfile contents\n"), 0o644)
	test.DemandSuccess(t, err)

	err = os.Mkdir(filepath.Join(dir, "subdir"), 0o755)
	test.DemandSuccess(t, err)
	err = os.WriteFile(filepath.Join(dir, "subdir", "subfile"), []byte("subfile contents\n"), 0o644)
	test.DemandSuccess(t, err)

	f, err := os.Create(filepath.Join(dir, "testarchive.zip"))
	test.DemandSuccess(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, n := range []string{"archivefile1", "archivefile2", "archivedir/", "archivedir/archivefile3"} {
		w, err := zw.Create(n)
		test.DemandSuccess(t, err)
		if n[len(n)-1] != '/' {
			fmt.Fprintf(w, "%s contents\n", filepath.Base(n))
		}
	}
	test.DemandSuccess(t, zw.Close())

	return dir
}

func TestArchivefsPath(t *testing.T) {
	dir := testdir(t)

	var afs archivefs.Path
	defer afs.Close()

	var path string
	var entries []archivefs.Node
	var err error

	// non-existant file
	err = afs.Set(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, afs.String(), "")

	// a real directory
	err = afs.Set(dir)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), dir)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())

	// entries in a directory. directories and archives first
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[subdir testarchive.zip testfile]")

	// a real file in directory
	path = filepath.Join(dir, "testfile")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectFailure(t, afs.InArchive())
	test.ExpectEquality(t, afs.Base(), "testfile")
	test.ExpectEquality(t, afs.Dir(), dir)

	// calling List() when path is set to a file the list returned should be
	// of the containing directory
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(entries), 3)

	// a real archive
	path = filepath.Join(dir, "testarchive.zip")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// entries in an archive
	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivedir archivefile1 archivefile2]")

	// file in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivefile1")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, afs.String(), path)
	test.ExpectFailure(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	// directory in a real archive
	path = filepath.Join(dir, "testarchive.zip", "archivedir")
	err = afs.Set(path)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, afs.IsDir())
	test.ExpectSuccess(t, afs.InArchive())

	entries, err = afs.List()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fmt.Sprintf("%s", entries), "[archivefile3]")

	// directories can not be read
	_, err = afs.ReadAll()
	test.ExpectFailure(t, err)
}

func TestReadFile(t *testing.T) {
	dir := testdir(t)

	d, err := archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "archivefile3 contents\n")

	d, err = archivefs.ReadFile(filepath.Join(dir, "testfile"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "testfile contents\n")

	_, err = archivefs.ReadFile(filepath.Join(dir, "testarchive.zip", "missing"))
	test.ExpectFailure(t, err)
}

func TestExpand(t *testing.T) {
	dir := testdir(t)

	// a single file expands to itself
	ids, err := archivefs.Expand(filepath.Join(dir, "testfile"), false)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(ids), 1)
	test.ExpectEquality(t, ids[0], filepath.Join(dir, "testfile"))

	// URLs are not checked
	ids, err = archivefs.Expand("https://example.com/a.png", false)
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, len(ids), 1)

	// directories require recursion
	_, err = archivefs.Expand(dir, false)
	test.ExpectSuccess(t, curated.Is(err, archivefs.IsDirectory))

	ids, err = archivefs.Expand(dir, true)
	test.ExpectSuccess(t, err)
	expected := []string{
		filepath.Join(dir, "subdir", "subfile"),
		filepath.Join(dir, "testarchive.zip", "archivedir", "archivefile3"),
		filepath.Join(dir, "testarchive.zip", "archivefile1"),
		filepath.Join(dir, "testarchive.zip", "archivefile2"),
		filepath.Join(dir, "testfile"),
	}
	test.DemandEquality(t, len(ids), len(expected))
	for i := range ids {
		test.ExpectEquality(t, ids[i], expected[i])
	}

	_, err = archivefs.Expand(filepath.Join(dir, "missing"), true)
	test.ExpectFailure(t, err)
}

func TestIsURL(t *testing.T) {
	test.ExpectSuccess(t, archivefs.IsURL("http://example.com/a.png"))
	test.ExpectSuccess(t, archivefs.IsURL("HTTPS://example.com/a.png"))
	test.ExpectFailure(t, archivefs.IsURL("/home/user/a.png"))
	test.ExpectFailure(t, archivefs.IsURL("ftp://example.com/a.png"))
}
