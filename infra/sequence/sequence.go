// Package sequence issues the global operation sequence. Every
// committed mutation (deposit, withdraw, make, cancel, fill) gets one
// strictly monotonic uint64; the WAL and the outbox are keyed by it.
package sequence

import "sync/atomic"

type Sequencer struct {
	last atomic.Uint64
}

// New creates a sequencer. Fresh start → start = 0; after recovery →
// start = last replayed seq.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.last.Store(start)
	return s
}

// Next returns the next operation sequence.
func (s *Sequencer) Next() uint64 {
	return s.last.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.last.Load()
}

// Reset is used once, after WAL replay.
func (s *Sequencer) Reset(v uint64) {
	s.last.Store(v)
}
