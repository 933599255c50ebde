package coordinator

import "sync/atomic"

// Ticket identifies one issued call.
type Ticket uint64

// Tracker hands out monotonically increasing tickets; only the most recently
// issued ticket may commit its result.
type Tracker struct {
	latest atomic.Uint64
}

// Issue returns a new ticket, superseding all earlier ones.
func (t *Tracker) Issue() Ticket {
	return Ticket(t.latest.Add(1))
}

// Invalidate supersedes every outstanding ticket without issuing a new call.
func (t *Tracker) Invalidate() {
	t.latest.Add(1)
}

// IsLatest reports whether tk is still the most recent ticket.
func (t *Tracker) IsLatest(tk Ticket) bool {
	return Ticket(t.latest.Load()) == tk
}
