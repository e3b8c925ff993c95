package booking

import (
	"fmt"
	"sync"
)

// slotLocks serializes admission per (dentist, date, time) tuple so the
// capacity check and the insert behind it cannot interleave for the same
// slot. This process is the only writer of bookings, which is what makes an
// in-process lock sufficient to keep the capacity invariant.
type slotLocks struct {
	mu    sync.Mutex
	locks map[string]*slotLock
}

type slotLock struct {
	sync.Mutex
	refs int
}

func newSlotLocks() *slotLocks {
	return &slotLocks{locks: make(map[string]*slotLock)}
}

func slotKey(dentistID int, date, timeSlot string) string {
	return fmt.Sprintf("%d|%s|%s", dentistID, date, timeSlot)
}

// acquire blocks until the lock for key is held. Entries are reference
// counted so the map does not grow with every slot ever seen.
func (sl *slotLocks) acquire(key string) *slotLock {
	sl.mu.Lock()
	l, ok := sl.locks[key]
	if !ok {
		l = &slotLock{}
		sl.locks[key] = l
	}
	l.refs++
	sl.mu.Unlock()

	l.Lock()
	return l
}

func (sl *slotLocks) release(key string, l *slotLock) {
	l.Unlock()

	sl.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(sl.locks, key)
	}
	sl.mu.Unlock()
}
