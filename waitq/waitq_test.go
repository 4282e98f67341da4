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

package waitq_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/imager/test"
	"github.com/jetsetilly/imager/waitq"
)

func TestOrdering(t *testing.T) {
	q := waitq.NewQueue[int](0)

	q.PushBack(2)
	q.PushBack(3)
	q.PushFront(1)
	test.ExpectEquality(t, q.Count(), 3)

	items := q.Items()
	test.DemandEquality(t, len(items), 3)
	for i, v := range items {
		test.ExpectEquality(t, v, i+1)
	}

	v, ok := q.PopBack(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 3)

	v, ok = q.PopFront(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 1)

	v, ok = q.PopFront(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 2)

	// empty queue returns the zero value and false
	v, ok = q.PopFront(0)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 0)
	test.ExpectEquality(t, q.Count(), 0)
}

func TestPopTimeout(t *testing.T) {
	q := waitq.NewQueue[string](0)

	start := time.Now()
	_, ok := q.PopBack(20 * time.Millisecond)
	test.ExpectFailure(t, ok)
	test.ExpectSuccess(t, time.Since(start) >= 20*time.Millisecond)

	go func() {
		time.Sleep(10 * time.Millisecond)
		q.PushBack("late")
	}()

	v, ok := q.PopFront(5 * time.Second)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "late")
}

func TestBounded(t *testing.T) {
	q := waitq.NewQueue[int](2)
	q.PushBack(1)
	q.PushBack(2)

	pushed := make(chan bool)
	go func() {
		q.PushFront(0)
		pushed <- true
	}()

	// the third push blocks until there is room
	select {
	case <-pushed:
		t.Fatalf("push to a full queue did not block")
	case <-time.After(20 * time.Millisecond):
	}

	v, ok := q.PopBack(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 2)

	select {
	case <-pushed:
	case <-time.After(5 * time.Second):
		t.Fatalf("push was not released by pop")
	}

	items := q.Items()
	test.DemandEquality(t, len(items), 2)
	test.ExpectEquality(t, items[0], 0)
	test.ExpectEquality(t, items[1], 1)
}

func TestProducerConsumer(t *testing.T) {
	const n = 1000

	q := waitq.NewQueue[int](8)

	go func() {
		for i := 0; i < n; i++ {
			q.PushBack(i)
		}
	}()

	// items are received in the order they were pushed
	for i := 0; i < n; i++ {
		v, ok := q.PopFront(5 * time.Second)
		test.DemandSuccess(t, ok)
		test.DemandEquality(t, v, i)
	}
}

func TestConcurrentPoppers(t *testing.T) {
	const n = 200

	q := waitq.NewQueue[int](0)

	var wg sync.WaitGroup
	results := make(chan int, n)
	for rangeCount := 0; rangeCount < 4; rangeCount++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				v, ok := q.PopFront(50 * time.Millisecond)
				if !ok {
					return
				}
				results <- v
			}
		}()
	}

	for i := 0; i < n; i++ {
		q.PushBack(i)
	}
	wg.Wait()
	close(results)

	seen := make(map[int]bool)
	for v := range results {
		test.ExpectFailure(t, seen[v])
		seen[v] = true
	}
	test.ExpectEquality(t, len(seen), n)
}
