package service

import (
	"context"
	"time"

	"vex/snapshot"
)

// StartSnapshotJob periodically captures engine state, then truncates
// the entry WAL and garbage-collects acked outbox entries up to the
// snapshot seq. The write lock is held only while walking state.
func (s *ExchangeService) StartSnapshotJob(
	ctx context.Context,
	dir string,
	interval time.Duration,
) {
	w := &snapshot.Writer{Dir: dir}

	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.snapshotOnce(w)
			}
		}
	}()
}

func (s *ExchangeService) snapshotOnce(w *snapshot.Writer) {
	s.mu.Lock()
	seq := s.seqGen.Current()
	err := w.Write(seq, s.eng)
	s.mu.Unlock()

	if err != nil {
		s.log.WithError(err).Error("snapshot write failed")
		return
	}

	if err := s.wal.TruncateBefore(seq); err != nil {
		s.log.WithError(err).Warn("wal truncate failed")
	}
	if err := s.outbox.TruncateAckedUpTo(seq); err != nil {
		s.log.WithError(err).Warn("outbox gc failed")
	}
}
