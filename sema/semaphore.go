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

package sema

import (
	"container/list"
	"sync"
	"time"
)

// Semaphore is a counting semaphore. The zero value is a semaphore with a
// count of zero and is ready to use.
type Semaphore struct {
	crit  sync.Mutex
	count int

	// waiting goroutines in order of arrival. a Post() when there are waiters
	// hands the count directly to the first waiter rather than incrementing
	// the count
	waiters list.List
}

// NewSemaphore is the preferred method of initialisation for the Semaphore
// type.
func NewSemaphore(initial int) *Semaphore {
	return &Semaphore{count: max(initial, 0)}
}

// Post increments the count and wakes one waiter if there is one. It never
// blocks.
func (s *Semaphore) Post() {
	s.crit.Lock()
	defer s.crit.Unlock()

	if e := s.waiters.Front(); e != nil {
		s.waiters.Remove(e)
		e.Value.(chan struct{}) <- struct{}{}
		return
	}
	s.count++
}

// Wait blocks until the count is positive and then decrements it.
func (s *Semaphore) Wait() {
	s.WaitTimeout(-1)
}

// WaitTimeout is like Wait() but gives up after the duration has passed. It
// returns true if the semaphore was acquired and false if the wait timed out.
//
// A duration of zero tests the semaphore without blocking. A negative
// duration waits indefinitely.
func (s *Semaphore) WaitTimeout(d time.Duration) bool {
	s.crit.Lock()
	if s.count > 0 {
		s.count--
		s.crit.Unlock()
		return true
	}
	if d == 0 {
		s.crit.Unlock()
		return false
	}

	// buffered so that Post() never blocks while holding the lock
	ch := make(chan struct{}, 1)
	e := s.waiters.PushBack(ch)
	s.crit.Unlock()

	if d < 0 {
		<-ch
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ch:
		return true
	case <-timer.C:
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	// a Post() may have chosen this waiter in the time between the timer
	// expiring and the lock being acquired. if so, the count belongs to us
	select {
	case <-ch:
		return true
	default:
	}

	s.waiters.Remove(e)
	return false
}

// Count returns the current count. The value may be out of date by the time
// it is used.
func (s *Semaphore) Count() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.count
}
