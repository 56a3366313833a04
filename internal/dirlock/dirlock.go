// Package dirlock serializes changes to the process working directory.
//
// The working directory is process-wide state, so the package holds exactly
// one lock instance for the lifetime of the process. The lock is reentrant
// for the goroutine that owns it: nested Lock calls on the owning goroutine
// never block, and the lock becomes free again once Unlock has been called
// as many times as Lock. Any other goroutine calling Lock blocks until then.
//
// Ownership is keyed by goroutine ID, so nested acquisitions must happen on
// the same goroutine that took the outer lock, not in goroutines spawned
// from it.
package dirlock

import (
	"sync"

	"github.com/petermattis/goid"

	"github.com/huwper/with-dir/internal/invariant"
)

type reentrantLock struct {
	mu    sync.Mutex
	cond  *sync.Cond
	owner int64 // goroutine ID of the holder, 0 when unheld
	depth int
}

func newReentrantLock() *reentrantLock {
	l := &reentrantLock{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

var global = newReentrantLock()

// Lock acquires the lock for the calling goroutine, blocking while any other
// goroutine holds it. A goroutine that already holds the lock acquires it
// again without blocking. It returns the resulting hold depth.
func Lock() int {
	return global.lock(goid.Get())
}

// Unlock releases one unit of hold depth for the calling goroutine. Calling
// Unlock on a goroutine that does not hold the lock is an unrecoverable
// programming error.
func Unlock() {
	global.unlock(goid.Get())
}

func (l *reentrantLock) lock(g int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.owner == g {
		l.depth++
		return l.depth
	}
	for l.depth != 0 {
		l.cond.Wait()
	}
	l.owner = g
	l.depth = 1
	return 1
}

func (l *reentrantLock) unlock(g int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	invariant.Assert(l.depth > 0, "dirlock: unlock of unheld lock")
	invariant.Assert(l.owner == g, "dirlock: unlock by non-owning goroutine")
	l.depth--
	if l.depth == 0 {
		l.owner = 0
		l.cond.Broadcast()
	}
}
