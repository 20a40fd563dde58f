package snapshot

import (
	"encoding/gob"
	"os"

	"vex/domain/exchange"
)

// Load restores engine state from a snapshot file and returns its seq.
// A missing snapshot is not an error: recovery then replays the WAL
// from the start.
func Load(path string, eng *exchange.Engine) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil // snapshot optional
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, b := range s.Balances {
		eng.RestoreBalance(
			exchange.Token(b.Token),
			exchange.Account(b.Owner),
			b.Available,
			b.Reserved,
		)
	}

	for _, o := range s.Orders {
		eng.RestoreOrder(exchange.Order{
			ID:         o.ID,
			Owner:      exchange.Account(o.Owner),
			TokenGet:   exchange.Token(o.TokenGet),
			AmountGet:  o.AmountGet,
			TokenGive:  exchange.Token(o.TokenGive),
			AmountGive: o.AmountGive,
			CreatedAt:  o.CreatedAt,
		}, o.Canceled, o.Filled)
	}

	return s.Seq, nil
}
