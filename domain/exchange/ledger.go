package exchange

// Ledger is the custody ledger: per (token, owner) it tracks funds a
// user may spend (available) and funds locked against one open order
// (reserved). It is pure bookkeeping; external token movement happens
// in the engine.
//
// Ledger is single-writer and deterministic.
type Ledger struct {
	balances map[balanceKey]*balance
}

type balanceKey struct {
	token Token
	owner Account
}

type balance struct {
	available uint64
	reserved  uint64
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[balanceKey]*balance),
	}
}

// entry returns the balance for (token, owner), creating a zero-valued
// one on first reference.
func (l *Ledger) entry(token Token, owner Account) *balance {
	k := balanceKey{token: token, owner: owner}
	b, ok := l.balances[k]
	if !ok {
		b = &balance{}
		l.balances[k] = b
	}
	return b
}

// Available returns the spendable balance. Reserved funds are owned by
// the pending order and are not visible here.
func (l *Ledger) Available(token Token, owner Account) uint64 {
	if b, ok := l.balances[balanceKey{token: token, owner: owner}]; ok {
		return b.available
	}
	return 0
}

// Reserved returns the funds locked against open orders.
func (l *Ledger) Reserved(token Token, owner Account) uint64 {
	if b, ok := l.balances[balanceKey{token: token, owner: owner}]; ok {
		return b.reserved
	}
	return 0
}

// Credit increments available directly. Used for deposits, the
// receiving side of a fill, and the fee payment.
func (l *Ledger) Credit(token Token, owner Account, amount uint64) {
	l.entry(token, owner).available += amount
}

// Debit decrements available. Fails if available < amount.
func (l *Ledger) Debit(token Token, owner Account, amount uint64) error {
	b := l.entry(token, owner)
	if b.available < amount {
		return ErrInsufficientBalance
	}
	b.available -= amount
	return nil
}

// Reserve moves amount from available to reserved.
func (l *Ledger) Reserve(token Token, owner Account, amount uint64) error {
	b := l.entry(token, owner)
	if b.available < amount {
		return ErrInsufficientBalance
	}
	b.available -= amount
	b.reserved += amount
	return nil
}

// Release moves amount from reserved back to available. The caller
// guarantees reserved >= amount; a shortfall means the engine's own
// transition logic is broken, so it panics rather than returning an
// error to the user.
func (l *Ledger) Release(token Token, owner Account, amount uint64) {
	b := l.entry(token, owner)
	if b.reserved < amount {
		panic("exchange: release exceeds reserved balance")
	}
	b.reserved -= amount
	b.available += amount
}

// SettleReserved consumes amount from owner's reserved balance and
// credits it to to's available balance. Reserved funds leave custody
// of the owner entirely; they are never returned.
func (l *Ledger) SettleReserved(token Token, owner Account, amount uint64, to Account) {
	b := l.entry(token, owner)
	if b.reserved < amount {
		panic("exchange: settle exceeds reserved balance")
	}
	b.reserved -= amount
	l.entry(token, to).available += amount
}

// Walk visits every non-zero balance entry. Iteration order is
// unspecified; used by snapshotting and conservation checks.
func (l *Ledger) Walk(fn func(token Token, owner Account, available, reserved uint64)) {
	for k, b := range l.balances {
		if b.available == 0 && b.reserved == 0 {
			continue
		}
		fn(k.token, k.owner, b.available, b.reserved)
	}
}
