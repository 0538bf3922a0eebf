package draft

import (
	"sync"
	"sync/atomic"

	"github.com/popacta/draftboard/go/internal/apperrors"
)

// Guard serializes every state-mutating operation against the draft store.
// Toggle, reset and settings patches queue behind one another; a bulk import
// holds the guard exclusively, and mutations arriving while an import runs
// fail fast with ErrImportInProgress instead of queueing behind a long rebuild.
// Read-only queries never touch the guard.
type Guard struct {
	mu        sync.Mutex
	importing atomic.Bool
}

// NewGuard creates a Guard.
func NewGuard() *Guard {
	return &Guard{}
}

// Acquire takes the guard for a single draft mutation.
func (g *Guard) Acquire() error {
	if g.importing.Load() {
		return apperrors.ErrImportInProgress
	}
	g.mu.Lock()
	return nil
}

// Release releases a guard taken with Acquire.
func (g *Guard) Release() {
	g.mu.Unlock()
}

// AcquireExclusive takes the guard for a bulk import. It waits for any
// in-flight mutation to finish; it never aborts one mid-transaction.
func (g *Guard) AcquireExclusive() {
	g.mu.Lock()
	g.importing.Store(true)
}

// ReleaseExclusive releases a guard taken with AcquireExclusive.
func (g *Guard) ReleaseExclusive() {
	g.importing.Store(false)
	g.mu.Unlock()
}
