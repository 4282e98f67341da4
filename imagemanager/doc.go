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

// Package imagemanager keeps the images either side of the current image
// decoded and ready, so that moving to the next or previous image never has
// to wait for an image to load.
//
// A Manager owns one worker goroutine (the producer) and is used by one
// consumer goroutine, usually the UI loop. The worker loads the image at the
// playlist cursor and then fills two windows of prefetched images: one
// behind the cursor and one in front of it. Each window is a waitq.Queue
// ordered from the image nearest the cursor to the furthest. The target
// size of each window is two images.
//
// The consumer moves through the playlist with Next() and Prev(). These
// never block. If the image in the requested direction has not been loaded
// yet the functions return false and the consumer should try again later.
// The image previously returned by Next(), Prev() or Reload() is pushed onto
// the front of the opposite window, where it is ready for the consumer to
// return to it.
//
// The worker never holds the playlist lock while decoding an image. Once
// the decode has completed the worker checks that the playlist still wants
// the image at the same position before adding it to a window. If it does
// not the image is released and the worker tries again.
//
// Images that can not be loaded are removed from the playlist and a message
// is written to the log.
//
// When the entire playlist fits in the windows the worker stops loading.
// Moving through the playlist then rotates images from one window to the
// other, without any further decoding.
//
// An image returned to the consumer is valid until the next call to Next(),
// Prev() or Reload() that returns a different image, or until Shutdown().
package imagemanager
