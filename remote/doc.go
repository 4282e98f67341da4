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

// Package remote lets the viewer be controlled over HTTP.
//
// Requests are not acted on by the server. Each request is turned into a
// Command and queued on a channel, which the viewer drains alongside key
// presses. This means the image manager still sees a single consumer.
//
//	GET  /status          current state of the image manager as JSON
//	POST /next            move to the next image
//	POST /prev            move to the previous image
//	POST /reload          redisplay the current image
//	POST /random          jump to a random position in the playlist
//	POST /append?path=    add a file, directory or archive to the playlist
//	POST /sort/:order     sort the playlist (random, logical or directory)
//
// If the command queue is full the server responds with 503.
package remote
