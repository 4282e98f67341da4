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

// Package sema provides the two synchronisation primitives used by the
// prefetch cache: a counting semaphore with timed waits and a mutex with
// scoped acquisition.
//
// The Semaphore differs from a buffered channel in that Post() never blocks,
// no matter how many times it is called without a matching Wait().
package sema
