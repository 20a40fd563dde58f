package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"vex/domain/exchange"
)

type Writer struct {
	Dir string
}

// Write captures the full engine state at seq. The file is written to
// a temp path and renamed so a crash mid-write never leaves a torn
// snapshot behind.
func (w *Writer) Write(seq uint64, eng *exchange.Engine) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
	}

	eng.WalkBalances(func(token exchange.Token, owner exchange.Account, available, reserved uint64) {
		s.Balances = append(s.Balances, BalanceEntry{
			Token:     string(token),
			Owner:     string(owner),
			Available: available,
			Reserved:  reserved,
		})
	})

	eng.WalkOrders(func(o exchange.Order, canceled, filled bool) {
		s.Orders = append(s.Orders, OrderEntry{
			ID:         o.ID,
			Owner:      string(o.Owner),
			TokenGet:   string(o.TokenGet),
			AmountGet:  o.AmountGet,
			TokenGive:  string(o.TokenGive),
			AmountGive: o.AmountGive,
			CreatedAt:  o.CreatedAt,
			Canceled:   canceled,
			Filled:     filled,
		})
	})

	tmp := filepath.Join(w.Dir, "snapshot.bin.tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(f).Encode(&s); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, filepath.Join(w.Dir, "snapshot.bin"))
}
