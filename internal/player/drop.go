package player

import "sync"

// DropLatch is a one-shot signal that a connection should terminate. Three
// independent sources race to close it — the peer closing its socket, the
// server kicking the player, and a codec error on either direction — and
// exactly one reason wins (spec §5 "exactly one of {peer closed, server
// drop, codec error} ends a connection").
type DropLatch struct {
	once   sync.Once
	ch     chan struct{}
	reason string
}

// NewDropLatch returns an armed, un-fired latch.
func NewDropLatch() *DropLatch {
	return &DropLatch{ch: make(chan struct{})}
}

// Fire closes the latch with reason. Only the first call has any effect;
// later calls are no-ops so the original reason is preserved.
func (d *DropLatch) Fire(reason string) {
	d.once.Do(func() {
		d.reason = reason
		close(d.ch)
	})
}

// Done returns a channel that is closed once the latch fires, for use in a
// select alongside socket reads/writes.
func (d *DropLatch) Done() <-chan struct{} {
	return d.ch
}

// Reason blocks until the latch fires and returns the reason it was fired
// with. Safe to call after Done() has already been observed closed.
func (d *DropLatch) Reason() string {
	<-d.ch
	return d.reason
}
