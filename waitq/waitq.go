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

// Package waitq implements a double-ended queue that can be pushed to and
// popped from by different goroutines. Pops block (for a bounded time) until
// an item is available. Pushes to a bounded queue block until there is room.
//
// The Count() function is only a heuristic. The queue may have changed by
// the time the value is used.
package waitq

import (
	"container/list"
	"time"

	"github.com/jetsetilly/imager/sema"
)

// Queue is a blocking double-ended queue of items of type T.
type Queue[T any] struct {
	crit  sema.Mutex
	items list.List

	// counts the number of items in the queue
	available *sema.Semaphore

	// counts the number of free slots in the queue. nil if the queue is
	// unbounded
	free *sema.Semaphore
}

// NewQueue is the preferred method of initialisation for the Queue type. A
// maximum of zero or less means the queue is unbounded.
func NewQueue[T any](max int) *Queue[T] {
	q := &Queue[T]{
		available: sema.NewSemaphore(0),
	}
	if max > 0 {
		q.free = sema.NewSemaphore(max)
	}
	return q
}

func (q *Queue[T]) push(item T, front bool) {
	if q.free != nil {
		q.free.Wait()
	}

	q.crit.Do(func() {
		if front {
			q.items.PushFront(item)
		} else {
			q.items.PushBack(item)
		}
	})

	q.available.Post()
}

func (q *Queue[T]) pop(timeout time.Duration, front bool) (T, bool) {
	var item T

	if !q.available.WaitTimeout(timeout) {
		return item, false
	}

	q.crit.Do(func() {
		var e *list.Element
		if front {
			e = q.items.Front()
		} else {
			e = q.items.Back()
		}
		item = q.items.Remove(e).(T)
	})

	if q.free != nil {
		q.free.Post()
	}

	return item, true
}

// PushFront adds the item to the front of the queue. Blocks if the queue is
// bounded and full.
func (q *Queue[T]) PushFront(item T) {
	q.push(item, true)
}

// PushBack adds the item to the back of the queue. Blocks if the queue is
// bounded and full.
func (q *Queue[T]) PushBack(item T) {
	q.push(item, false)
}

// PopFront removes and returns the item at the front of the queue. The
// boolean is false if no item became available before the timeout.
//
// A timeout of zero returns immediately. A negative timeout waits
// indefinitely.
func (q *Queue[T]) PopFront(timeout time.Duration) (T, bool) {
	return q.pop(timeout, true)
}

// PopBack removes and returns the item at the back of the queue. The timeout
// is interpreted in the same way as for PopFront().
func (q *Queue[T]) PopBack(timeout time.Duration) (T, bool) {
	return q.pop(timeout, false)
}

// Count returns the number of items in the queue.
func (q *Queue[T]) Count() int {
	var n int
	q.crit.Do(func() {
		n = q.items.Len()
	})
	return n
}

// Items returns a copy of the items in the queue, front first.
func (q *Queue[T]) Items() []T {
	var items []T
	q.crit.Do(func() {
		items = make([]T, 0, q.items.Len())
		for e := q.items.Front(); e != nil; e = e.Next() {
			items = append(items, e.Value.(T))
		}
	})
	return items
}
