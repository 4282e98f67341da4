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
	"testing"
	"time"

	"github.com/jetsetilly/imager/test"
)

func TestResourcePath(t *testing.T) {
	base := t.TempDir()

	pth, err := resourcePath(base, "dumps", "cache.dot")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "dumps", "cache.dot"))

	fi, err := os.Stat(filepath.Join(base, "dumps"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	// the filename is not created
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = resourcePath(base, "logs", "")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(base, "logs"))
	fi, err = os.Stat(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, fi.IsDir())

	pth, err = resourcePath(base)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, base)
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 5, 14, 3, 9, 0, time.UTC)

	test.ExpectEquality(t, uniqueFilename(n, "cache", "", ".dot"), "cache_20240305_140309.dot")
	test.ExpectEquality(t, uniqueFilename(n, "cache", "pics/holiday 1.jpg", ".dot"), "cache_holiday_1_20240305_140309.dot")
	test.ExpectEquality(t, uniqueFilename(n, "cache", "  ", ""), "cache_20240305_140309")
}
