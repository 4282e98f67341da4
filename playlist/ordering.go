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

package playlist

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jetsetilly/imager/random"
)

// Ordering rearranges the entries of a playlist in place.
type Ordering func(entries []string)

// RandomOrder returns an Ordering that shuffles the entries.
func RandomOrder(rnd *random.Random) Ordering {
	return func(entries []string) {
		rnd.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
	}
}

// logical returns a comparison function in which runs of digits are compared
// by their numeric value and letter case is a lesser consideration than the
// letter itself. So "img0" comes before "img2", which comes before "img10",
// and "a" comes before "B".
//
// runs of non-digits are compared by the collator, ignoring case. strings
// that compare as equal run-by-run are ordered by byte value so that the
// order is total.
//
// a collator is not safe for concurrent use so a new comparison function
// should be created for every sort.
func logical() func(a, b string) int {
	col := collate.New(language.Und, collate.IgnoreCase)
	return func(a, b string) int {
		x, y := a, b
		for x != "" && y != "" {
			var rx, ry string
			rx, x = nextRun(x)
			ry, y = nextRun(y)

			var c int
			if isDigit(rx[0]) && isDigit(ry[0]) {
				c = compareNumeric(rx, ry)
			} else {
				c = col.CompareString(rx, ry)
			}
			if c != 0 {
				return c
			}
		}

		switch {
		case x == "" && y != "":
			return -1
		case x != "" && y == "":
			return 1
		}
		return strings.Compare(a, b)
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// nextRun splits s after the first run of digits or non-digits.
func nextRun(s string) (string, string) {
	d := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == d {
		i++
	}
	return s[:i], s[i:]
}

// compareNumeric compares two runs of digits by value. the runs can be of
// any length.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// LogicalOrder sorts entries in the way a person would expect. See the
// logical() function for details.
func LogicalOrder(entries []string) {
	cmp := logical()
	sort.SliceStable(entries, func(i, j int) bool {
		return cmp(entries[i], entries[j]) < 0
	})
}

// split identifier into the parent part and the final element. works for
// filesystem paths and for URLs.
func split(id string) (string, string) {
	i := strings.LastIndexByte(id, '/')
	if i < 0 {
		return "", id
	}
	return id[:i], id[i+1:]
}

// DirectoryOrder groups entries by their parent directory. The groups are in
// logical order, as are the entries in each group.
func DirectoryOrder(entries []string) {
	cmp := logical()
	sort.SliceStable(entries, func(i, j int) bool {
		di, bi := split(entries[i])
		dj, bj := split(entries[j])
		if c := cmp(di, dj); c != 0 {
			return c < 0
		}
		return cmp(bi, bj) < 0
	})
}
