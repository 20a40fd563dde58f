package token

import "vex/domain/exchange"

// Custody adapts a token Ledger to the capability interface the
// exchange engine holds on external ledgers. The exchange account is
// the fixed counterparty: Pull draws on the owner's allowance for it,
// Push transfers back out of it.
type Custody struct {
	ledger   *Ledger
	exchange string
}

func Bind(l *Ledger, exchangeAccount string) *Custody {
	return &Custody{ledger: l, exchange: exchangeAccount}
}

func (c *Custody) Pull(owner exchange.Account, amount uint64) error {
	return c.ledger.TransferFrom(c.exchange, string(owner), c.exchange, amount)
}

func (c *Custody) Push(owner exchange.Account, amount uint64) error {
	return c.ledger.Transfer(c.exchange, string(owner), amount)
}

func (c *Custody) BalanceOf(owner exchange.Account) uint64 {
	return c.ledger.BalanceOf(string(owner))
}
