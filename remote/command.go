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

package remote

// Action is the type of a remote command.
type Action int

// List of valid Action values.
const (
	Next Action = iota
	Prev
	Reload
	Random
	Append
	Sort
)

func (a Action) String() string {
	switch a {
	case Next:
		return "next"
	case Prev:
		return "prev"
	case Reload:
		return "reload"
	case Random:
		return "random"
	case Append:
		return "append"
	case Sort:
		return "sort"
	}
	return "unknown"
}

// Command is a request received by the server. Argument is the path for the
// Append action and the ordering for the Sort action.
type Command struct {
	Action   Action
	Argument string
}

func (c Command) String() string {
	if c.Argument == "" {
		return c.Action.String()
	}
	return c.Action.String() + " " + c.Argument
}

// List of valid orderings for the Sort action.
const (
	SortRandom    = "random"
	SortLogical   = "logical"
	SortDirectory = "directory"
)
