package service

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"vex/domain/exchange"
	"vex/infra/outbox"
	"vex/infra/sequence"
	"vex/infra/wal"
)

/*
ExchangeService is the ONLY write entry point into the system.

Every mutation runs under one mutex, so the reference execution model
holds: operations are single logically-atomic transactions with no
interleaving. The commit path for a successful mutation is

	domain transition → WAL append → outbox put

in that order, all inside the lock. A persistence failure after the
domain transition cannot be rolled back, so it halts the process;
restart recovers from snapshot + WAL.
*/

type ExchangeService struct {
	mu sync.RWMutex

	eng    *exchange.Engine
	seqGen *sequence.Sequencer
	wal    *wal.WAL
	outbox *outbox.Outbox
	log    *logrus.Entry
}

// NewExchangeService wires all dependencies. No globals.
func NewExchangeService(
	eng *exchange.Engine,
	seqGen *sequence.Sequencer,
	w *wal.WAL,
	ob *outbox.Outbox,
	log *logrus.Logger,
) *ExchangeService {
	return &ExchangeService{
		eng:    eng,
		seqGen: seqGen,
		wal:    w,
		outbox: ob,
		log:    log.WithField("component", "exchange"),
	}
}

//
// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────
//

func (s *ExchangeService) Deposit(token exchange.Token, owner exchange.Account, amount uint64) (exchange.DepositEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.eng.DepositToken(token, owner, amount)
	if err != nil {
		return exchange.DepositEvent{}, err
	}

	s.commit(wal.RecordDeposit, ev,
		fmt.Sprintf("%s|%s|%d", token, owner, amount))

	s.log.WithFields(logrus.Fields{
		"token": token, "user": owner, "amount": amount, "balance": ev.Balance,
	}).Info("deposit")
	return ev, nil
}

func (s *ExchangeService) Withdraw(token exchange.Token, owner exchange.Account, amount uint64) (exchange.WithdrawEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.eng.WithdrawToken(token, owner, amount)
	if err != nil {
		return exchange.WithdrawEvent{}, err
	}

	s.commit(wal.RecordWithdraw, ev,
		fmt.Sprintf("%s|%s|%d", token, owner, amount))

	s.log.WithFields(logrus.Fields{
		"token": token, "user": owner, "amount": amount, "balance": ev.Balance,
	}).Info("withdraw")
	return ev, nil
}

func (s *ExchangeService) MakeOrder(owner exchange.Account, tokenGet exchange.Token, amountGet uint64, tokenGive exchange.Token, amountGive uint64) (exchange.OrderCreatedEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.eng.MakeOrder(owner, tokenGet, amountGet, tokenGive, amountGive)
	if err != nil {
		return exchange.OrderCreatedEvent{}, err
	}

	s.commit(wal.RecordMake, ev,
		fmt.Sprintf("%s|%s|%d|%s|%d", owner, tokenGet, amountGet, tokenGive, amountGive))

	s.log.WithFields(logrus.Fields{
		"id": ev.ID, "user": owner,
		"token_get": tokenGet, "amount_get": amountGet,
		"token_give": tokenGive, "amount_give": amountGive,
	}).Info("order created")
	return ev, nil
}

func (s *ExchangeService) CancelOrder(id uint64, caller exchange.Account) (exchange.OrderCanceledEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.eng.CancelOrder(id, caller)
	if err != nil {
		return exchange.OrderCanceledEvent{}, err
	}

	s.commit(wal.RecordCancel, ev,
		fmt.Sprintf("%d|%s", id, caller))

	s.log.WithFields(logrus.Fields{"id": id, "user": caller}).Info("order canceled")
	return ev, nil
}

func (s *ExchangeService) FillOrder(id uint64, filler exchange.Account) (exchange.OrderFilledEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := s.eng.FillOrder(id, filler)
	if err != nil {
		return exchange.OrderFilledEvent{}, err
	}

	s.commit(wal.RecordFill, ev,
		fmt.Sprintf("%d|%s", id, filler))

	s.log.WithFields(logrus.Fields{
		"id": id, "user": filler, "creator": ev.Creator,
	}).Info("order filled")
	return ev, nil
}

// commit persists one committed mutation: WAL record first, then the
// event into the outbox, both keyed by the next operation seq.
func (s *ExchangeService) commit(rt wal.RecordType, ev exchange.Event, payload string) {
	seq := s.seqGen.Next()

	if err := s.wal.Append(wal.NewRecord(rt, seq, []byte(payload))); err != nil {
		panic(fmt.Sprintf("wal append failed at seq %d: %v", seq, err))
	}

	body, err := json.Marshal(ev)
	if err != nil {
		panic(fmt.Sprintf("event encode failed at seq %d: %v", seq, err))
	}
	if err := s.outbox.Put(seq, uint8(ev.Type()), body); err != nil {
		panic(fmt.Sprintf("outbox put failed at seq %d: %v", seq, err))
	}
}

//
// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────
//

func (s *ExchangeService) BalanceOf(token exchange.Token, owner exchange.Account) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.BalanceOf(token, owner)
}

func (s *ExchangeService) Reserved(token exchange.Token, owner exchange.Account) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.Reserved(token, owner)
}

func (s *ExchangeService) OrderCount() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.OrderCount()
}

func (s *ExchangeService) Order(id uint64) (exchange.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.Order(id)
}

func (s *ExchangeService) IsCanceled(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.IsCanceled(id)
}

func (s *ExchangeService) IsFilled(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eng.IsFilled(id)
}

func (s *ExchangeService) FeeAccount() exchange.Account {
	return s.eng.FeeAccount()
}

func (s *ExchangeService) FeePercent() uint64 {
	return s.eng.FeePercent()
}
