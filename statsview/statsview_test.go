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

package statsview_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/imager/statsview"
	"github.com/jetsetilly/imager/test"
)

func TestLaunchWhenUnavailable(t *testing.T) {
	if statsview.Available() {
		t.Skip("statsview is available in this build")
	}

	var b bytes.Buffer
	stop := statsview.Launch(&b, "")
	stop()
	test.ExpectSuccess(t, strings.Contains(b.String(), "not available"))
}
