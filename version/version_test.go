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

package version

import (
	"strings"
	"testing"

	"github.com/jetsetilly/imager/test"
)

func TestReleaseNumber(t *testing.T) {
	inf := readInfo("v1.2")
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.Version, "v1.2")
	test.ExpectEquality(t, inf.String(), "Imager v1.2")
}

func TestUnnumbered(t *testing.T) {
	inf := readInfo("")
	test.ExpectFailure(t, inf.Release)
	test.ExpectSuccess(t, inf.Version == "unreleased" || inf.Version == "local")
	test.ExpectSuccess(t, strings.HasPrefix(inf.String(), "Imager "+inf.Version+" ("))
}
