// Package snapshot persists full engine state so recovery does not
// have to replay the WAL from the beginning. A snapshot at seq N plus
// the WAL records after N reproduce the exact live state.
package snapshot

import "time"

type Snapshot struct {
	Seq      uint64
	Created  time.Time
	Balances []BalanceEntry
	Orders   []OrderEntry
}

type BalanceEntry struct {
	Token     string
	Owner     string
	Available uint64
	Reserved  uint64
}

type OrderEntry struct {
	ID         uint64
	Owner      string
	TokenGet   string
	AmountGet  uint64
	TokenGive  string
	AmountGive uint64
	CreatedAt  int64
	Canceled   bool
	Filled     bool
}
