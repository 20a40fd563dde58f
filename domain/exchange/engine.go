package exchange

import (
	"fmt"
	"math/bits"
	"time"
)

// Engine is the order lifecycle state machine. Per order:
//
//	Open → Canceled (terminal)
//	Open → Filled   (terminal)
//
// It owns the custody ledger and the order book; the fee account and
// fee percent are fixed for the engine's lifetime. The engine is
// single-writer: callers serialize access (the service layer holds one
// mutex around every mutation).
type Engine struct {
	ledger *Ledger
	book   *Book
	tokens *Registry

	feeAccount Account
	feePercent uint64

	now func() int64
}

func NewEngine(tokens *Registry, feeAccount Account, feePercent uint64) *Engine {
	return &Engine{
		ledger:     NewLedger(),
		book:       NewBook(),
		tokens:     tokens,
		feeAccount: feeAccount,
		feePercent: feePercent,
		now:        func() int64 { return time.Now().Unix() },
	}
}

func (e *Engine) FeeAccount() Account { return e.feeAccount }
func (e *Engine) FeePercent() uint64  { return e.feePercent }

//
// ──────────────────────────────────────────────────────────
// Custody
// ──────────────────────────────────────────────────────────
//

// DepositToken pulls amount from owner's external ledger account into
// custody. Nothing changes if the pull is rejected.
func (e *Engine) DepositToken(token Token, owner Account, amount uint64) (DepositEvent, error) {
	l, ok := e.tokens.Lookup(token)
	if !ok {
		return DepositEvent{}, fmt.Errorf("%w: no ledger for token %s", ErrTransferRejected, token)
	}
	if err := l.Pull(owner, amount); err != nil {
		return DepositEvent{}, fmt.Errorf("%w: %v", ErrTransferRejected, err)
	}

	e.ledger.Credit(token, owner, amount)

	return DepositEvent{
		Token:   token,
		User:    owner,
		Amount:  amount,
		Balance: e.ledger.Available(token, owner),
	}, nil
}

// WithdrawToken pushes amount back out through the external ledger.
// The available balance is checked first and debited only after the
// push succeeds, so a rejected push leaves no partial debit.
func (e *Engine) WithdrawToken(token Token, owner Account, amount uint64) (WithdrawEvent, error) {
	if e.ledger.Available(token, owner) < amount {
		return WithdrawEvent{}, ErrInsufficientBalance
	}

	l, ok := e.tokens.Lookup(token)
	if !ok {
		return WithdrawEvent{}, fmt.Errorf("%w: no ledger for token %s", ErrTransferRejected, token)
	}
	if err := l.Push(owner, amount); err != nil {
		return WithdrawEvent{}, fmt.Errorf("%w: %v", ErrTransferRejected, err)
	}

	if err := e.ledger.Debit(token, owner, amount); err != nil {
		// Balance was checked above; reaching this means the engine
		// mutated state between check and debit.
		panic("exchange: withdraw debit failed after balance check")
	}

	return WithdrawEvent{
		Token:   token,
		User:    owner,
		Amount:  amount,
		Balance: e.ledger.Available(token, owner),
	}, nil
}

// BalanceOf returns the available balance only. Reserved funds belong
// to the pending order and are not spendable.
func (e *Engine) BalanceOf(token Token, owner Account) uint64 {
	return e.ledger.Available(token, owner)
}

// Reserved returns the funds locked against owner's open orders.
func (e *Engine) Reserved(token Token, owner Account) uint64 {
	return e.ledger.Reserved(token, owner)
}

//
// ──────────────────────────────────────────────────────────
// Order lifecycle
// ──────────────────────────────────────────────────────────
//

// MakeOrder reserves the give-amount and appends the order. No order
// is created if the reservation fails.
func (e *Engine) MakeOrder(owner Account, tokenGet Token, amountGet uint64, tokenGive Token, amountGive uint64) (OrderCreatedEvent, error) {
	return e.makeOrder(owner, tokenGet, amountGet, tokenGive, amountGive, e.now())
}

func (e *Engine) makeOrder(owner Account, tokenGet Token, amountGet uint64, tokenGive Token, amountGive uint64, ts int64) (OrderCreatedEvent, error) {
	if amountGet == 0 || amountGive == 0 {
		return OrderCreatedEvent{}, ErrZeroAmount
	}
	if err := e.ledger.Reserve(tokenGive, owner, amountGive); err != nil {
		return OrderCreatedEvent{}, err
	}

	id := e.book.Append(owner, tokenGet, amountGet, tokenGive, amountGive, ts)

	return OrderCreatedEvent{
		ID:         id,
		User:       owner,
		TokenGet:   tokenGet,
		AmountGet:  amountGet,
		TokenGive:  tokenGive,
		AmountGive: amountGive,
		Timestamp:  ts,
	}, nil
}

// CancelOrder returns the reserved give-amount to available and marks
// the order canceled.
//
// Precondition order is part of the public contract: an owner mismatch
// on an existing order reports ErrNotAuthorized before anything else,
// an unknown ID reports ErrOrderNotFound, then already-canceled, then
// already-filled.
func (e *Engine) CancelOrder(id uint64, caller Account) (OrderCanceledEvent, error) {
	o, ok := e.book.Get(id)
	if ok && o.Owner != caller {
		return OrderCanceledEvent{}, ErrNotAuthorized
	}
	if !ok {
		return OrderCanceledEvent{}, ErrOrderNotFound
	}
	if e.book.IsCanceled(id) {
		return OrderCanceledEvent{}, ErrAlreadyCanceled
	}
	if e.book.IsFilled(id) {
		return OrderCanceledEvent{}, ErrAlreadyFilled
	}

	e.ledger.Release(o.TokenGive, o.Owner, o.AmountGive)
	e.book.MarkCanceled(id)

	return OrderCanceledEvent{
		ID:         o.ID,
		User:       o.Owner,
		TokenGet:   o.TokenGet,
		AmountGet:  o.AmountGet,
		TokenGive:  o.TokenGive,
		AmountGive: o.AmountGive,
		Timestamp:  e.now(),
	}, nil
}

// FillOrder executes an open order on behalf of filler. All mutations
// are all-or-nothing: every precondition is checked before the first
// ledger write.
func (e *Engine) FillOrder(id uint64, filler Account) (OrderFilledEvent, error) {
	o, ok := e.book.Get(id)
	if !ok {
		return OrderFilledEvent{}, ErrOrderNotFound
	}
	if e.book.IsCanceled(id) {
		return OrderFilledEvent{}, ErrOrderCanceled
	}
	if e.book.IsFilled(id) {
		return OrderFilledEvent{}, ErrAlreadyFilled
	}
	if filler == o.Owner {
		return OrderFilledEvent{}, ErrSelfFill
	}

	// The affordability check must not wrap: a fee or a get+fee total
	// past the uint64 range is unpayable by construction.
	fee, ok := ComputeFee(o.AmountGet, e.feePercent)
	if !ok {
		return OrderFilledEvent{}, ErrInsufficientBalance
	}
	total, carry := bits.Add64(o.AmountGet, fee, 0)
	if carry != 0 || e.ledger.Available(o.TokenGet, filler) < total {
		return OrderFilledEvent{}, ErrInsufficientBalance
	}

	// Settlement. Preconditions all passed; these cannot fail.
	if err := e.ledger.Debit(o.TokenGet, filler, total); err != nil {
		panic("exchange: fill debit failed after balance check")
	}
	e.ledger.Credit(o.TokenGet, o.Owner, o.AmountGet)
	e.ledger.Credit(o.TokenGet, e.feeAccount, fee)
	e.ledger.SettleReserved(o.TokenGive, o.Owner, o.AmountGive, filler)
	e.book.MarkFilled(id)

	return OrderFilledEvent{
		ID:         o.ID,
		User:       filler,
		Creator:    o.Owner,
		TokenGet:   o.TokenGet,
		AmountGet:  o.AmountGet,
		TokenGive:  o.TokenGive,
		AmountGive: o.AmountGive,
		Timestamp:  e.now(),
	}, nil
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (e *Engine) OrderCount() uint64 {
	return e.book.Count()
}

func (e *Engine) Order(id uint64) (Order, bool) {
	return e.book.Get(id)
}

func (e *Engine) IsCanceled(id uint64) bool {
	return e.book.IsCanceled(id)
}

func (e *Engine) IsFilled(id uint64) bool {
	return e.book.IsFilled(id)
}

//
// ──────────────────────────────────────────────────────────
// Replay / snapshot hooks
// ──────────────────────────────────────────────────────────
//

// ApplyDeposit replays a committed deposit without touching the
// external ledger (the pull already happened before the WAL record was
// written).
func (e *Engine) ApplyDeposit(token Token, owner Account, amount uint64) {
	e.ledger.Credit(token, owner, amount)
}

// ApplyWithdraw replays a committed withdrawal without the external
// push.
func (e *Engine) ApplyWithdraw(token Token, owner Account, amount uint64) error {
	return e.ledger.Debit(token, owner, amount)
}

// ApplyMake replays an order creation with its original timestamp.
func (e *Engine) ApplyMake(owner Account, tokenGet Token, amountGet uint64, tokenGive Token, amountGive uint64, ts int64) error {
	_, err := e.makeOrder(owner, tokenGet, amountGet, tokenGive, amountGive, ts)
	return err
}

// WalkBalances exposes ledger state for snapshotting.
func (e *Engine) WalkBalances(fn func(token Token, owner Account, available, reserved uint64)) {
	e.ledger.Walk(fn)
}

// WalkOrders exposes book state for snapshotting.
func (e *Engine) WalkOrders(fn func(o Order, canceled, filled bool)) {
	e.book.Walk(fn)
}

// RestoreBalance installs a snapshot ledger entry.
func (e *Engine) RestoreBalance(token Token, owner Account, available, reserved uint64) {
	b := e.ledger.entry(token, owner)
	b.available = available
	b.reserved = reserved
}

// RestoreOrder installs a snapshot order with its original ID and
// status flags.
func (e *Engine) RestoreOrder(o Order, canceled, filled bool) {
	e.book.Restore(o, canceled, filled)
}
