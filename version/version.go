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

// Package version reports the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Imager"

// set by the linker for numbered releases
var number string

// Info is the version information for the running binary.
type Info struct {
	// the version number, "unreleased" if built from a vcs checkout without
	// a version number, or "local" if there is no vcs information at all
	Version string

	// the vcs revision, suffixed with "+dirty" if the checkout had
	// uncommitted changes
	Revision string

	// true if Version is a numbered release
	Release bool

	// version of Go used to build the binary
	GoVersion string
}

var info Info

func init() {
	info = readInfo(number)
}

func readInfo(number string) Info {
	var vcs bool
	var modified bool

	inf := Info{Revision: "no revision information"}

	if bi, ok := debug.ReadBuildInfo(); ok {
		inf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}

// Version returns the version information for the running binary.
func Version() Info {
	return info
}

// String returns a single line suitable for the VERSION mode of the
// application. Revision information is only included for non-release
// versions.
func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, inf.Version, inf.Revision)
}
