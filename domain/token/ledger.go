// Package token is an in-process fungible-token ledger with
// owner-authorized delegated transfers. It is the dev and test
// implementation of the external ledger the exchange custody layer
// pulls from and pushes to.
package token

import (
	"errors"
	"sync"
)

var (
	ErrInsufficientFunds     = errors.New("token: insufficient funds")
	ErrInsufficientAllowance = errors.New("token: insufficient allowance")
)

// Ledger holds account balances and spender allowances for one token.
// The full supply is minted to the deployer at construction.
type Ledger struct {
	mu sync.Mutex

	name        string
	symbol      string
	totalSupply uint64

	balances   map[string]uint64
	allowances map[string]map[string]uint64
}

func New(name, symbol string, totalSupply uint64, deployer string) *Ledger {
	l := &Ledger{
		name:        name,
		symbol:      symbol,
		totalSupply: totalSupply,
		balances:    make(map[string]uint64),
		allowances:  make(map[string]map[string]uint64),
	}
	l.balances[deployer] = totalSupply
	return l
}

func (l *Ledger) Name() string        { return l.name }
func (l *Ledger) Symbol() string      { return l.symbol }
func (l *Ledger) TotalSupply() uint64 { return l.totalSupply }

func (l *Ledger) BalanceOf(owner string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[owner]
}

// Transfer moves amount from from's account to to's account.
func (l *Ledger) Transfer(from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.transfer(from, to, amount)
}

// Approve lets spender move up to amount out of owner's account via
// TransferFrom. A new approval replaces the previous one.
func (l *Ledger) Approve(owner, spender string, amount uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.allowances[owner]
	if !ok {
		m = make(map[string]uint64)
		l.allowances[owner] = m
	}
	m[spender] = amount
}

func (l *Ledger) Allowance(owner, spender string) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allowances[owner][spender]
}

// TransferFrom moves amount from from's account to to's account on the
// authority of spender's allowance, which is reduced by amount.
func (l *Ledger) TransferFrom(spender, from, to string, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.allowances[from][spender] < amount {
		return ErrInsufficientAllowance
	}
	if err := l.transfer(from, to, amount); err != nil {
		return err
	}
	l.allowances[from][spender] -= amount
	return nil
}

func (l *Ledger) transfer(from, to string, amount uint64) error {
	if l.balances[from] < amount {
		return ErrInsufficientFunds
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}
