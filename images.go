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

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/jetsetilly/imager/archivefs"
	"github.com/jetsetilly/imager/curated"
	"github.com/jetsetilly/imager/logger"
)

// gatherImages expands the contents of the file list and then the command
// line arguments into a list of image identifiers. Names that cannot be
// expanded are logged and skipped. An error is only returned if the file
// list cannot be read.
func gatherImages(filelist string, args []string, recurse bool) ([]string, error) {
	var names []string

	if filelist != "" {
		f, err := os.Open(filelist)
		if err != nil {
			return nil, curated.Errorf("filelist: %v", err)
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			// blank lines and comments are ignored
			l := strings.TrimSpace(scanner.Text())
			if l == "" || strings.HasPrefix(l, "#") {
				continue
			}
			names = append(names, l)
		}
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf("filelist: %v", err)
		}
	}

	names = append(names, args...)

	var ids []string
	for _, n := range names {
		e, err := archivefs.Expand(n, recurse)
		if err != nil {
			logger.Log(logger.Allow, "imager", err)
			continue
		}
		ids = append(ids, e...)
	}

	return ids, nil
}
