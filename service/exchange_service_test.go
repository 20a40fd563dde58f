package service

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex/domain/exchange"
	"vex/domain/token"
	"vex/infra/outbox"
	"vex/infra/sequence"
	"vex/infra/wal"
	"vex/snapshot"
)

const exchangeAccount = "exchange"

// newRegistry builds two in-process token ledgers with alice and bob
// funded and the exchange account pre-approved for both.
func newRegistry() *exchange.Registry {
	reg := exchange.NewRegistry()
	for _, id := range []string{"T1", "T2"} {
		l := token.New(id, id, 2_000, "alice")
		_ = l.Transfer("alice", "bob", 1_000)
		l.Approve("alice", exchangeAccount, 1_000)
		l.Approve("bob", exchangeAccount, 1_000)
		reg.Register(exchange.Token(id), token.Bind(l, exchangeAccount))
	}
	return reg
}

type testStack struct {
	svc    *ExchangeService
	eng    *exchange.Engine
	seqGen *sequence.Sequencer
	wal    *wal.WAL
	outbox *outbox.Outbox
	walDir string
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	walDir := t.TempDir()
	w, err := wal.Open(wal.Config{Dir: walDir, SegmentSize: 1 << 20})
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	ob, err := outbox.Open(t.TempDir(), func() int64 { return 1 })
	require.NoError(t, err)
	t.Cleanup(func() { ob.Close() })

	eng := exchange.NewEngine(newRegistry(), "fee", 10)
	seqGen := sequence.New(0)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return &testStack{
		svc:    NewExchangeService(eng, seqGen, w, ob, log),
		eng:    eng,
		seqGen: seqGen,
		wal:    w,
		outbox: ob,
		walDir: walDir,
	}
}

func TestCommandsAssignSequences(t *testing.T) {
	st := newTestStack(t)

	_, err := st.svc.Deposit("T1", "alice", 100)
	require.NoError(t, err)
	_, err = st.svc.MakeOrder("alice", "T2", 200, "T1", 100)
	require.NoError(t, err)
	_, err = st.svc.Deposit("T2", "bob", 300)
	require.NoError(t, err)
	_, err = st.svc.FillOrder(1, "bob")
	require.NoError(t, err)

	assert.Equal(t, uint64(4), st.seqGen.Current())

	// Every committed mutation has an outbox entry.
	var types []uint8
	require.NoError(t, st.outbox.ScanPending(func(r *outbox.Record) error {
		types = append(types, r.EventType)
		return nil
	}))
	assert.Equal(t, []uint8{
		uint8(exchange.EvDeposit),
		uint8(exchange.EvOrderCreated),
		uint8(exchange.EvDeposit),
		uint8(exchange.EvOrderFilled),
	}, types)
}

func TestFailedCommandLeavesNoTrace(t *testing.T) {
	st := newTestStack(t)

	_, err := st.svc.Withdraw("T1", "alice", 100)
	require.ErrorIs(t, err, exchange.ErrInsufficientBalance)

	_, err = st.svc.FillOrder(9, "bob")
	require.ErrorIs(t, err, exchange.ErrOrderNotFound)

	assert.Zero(t, st.seqGen.Current())

	count := 0
	require.NoError(t, st.outbox.ScanPending(func(*outbox.Record) error {
		count++
		return nil
	}))
	assert.Zero(t, count)
}

func TestQueriesReflectState(t *testing.T) {
	st := newTestStack(t)

	_, err := st.svc.Deposit("T1", "alice", 100)
	require.NoError(t, err)
	_, err = st.svc.MakeOrder("alice", "T2", 50, "T1", 100)
	require.NoError(t, err)

	assert.Zero(t, st.svc.BalanceOf("T1", "alice"))
	assert.Equal(t, uint64(100), st.svc.Reserved("T1", "alice"))
	assert.Equal(t, uint64(1), st.svc.OrderCount())

	o, ok := st.svc.Order(1)
	require.True(t, ok)
	assert.Equal(t, exchange.Account("alice"), o.Owner)
	assert.False(t, st.svc.IsCanceled(1))
	assert.False(t, st.svc.IsFilled(1))

	assert.Equal(t, exchange.Account("fee"), st.svc.FeeAccount())
	assert.Equal(t, uint64(10), st.svc.FeePercent())
}

func TestReplayRebuildsState(t *testing.T) {
	st := newTestStack(t)

	_, err := st.svc.Deposit("T1", "alice", 300)
	require.NoError(t, err)
	_, err = st.svc.Deposit("T2", "bob", 500)
	require.NoError(t, err)
	_, err = st.svc.MakeOrder("alice", "T2", 200, "T1", 100)
	require.NoError(t, err)
	_, err = st.svc.MakeOrder("alice", "T2", 10, "T1", 50)
	require.NoError(t, err)
	_, err = st.svc.CancelOrder(2, "alice")
	require.NoError(t, err)
	_, err = st.svc.FillOrder(1, "bob")
	require.NoError(t, err)
	_, err = st.svc.Withdraw("T1", "alice", 50)
	require.NoError(t, err)
	require.NoError(t, st.wal.Close())

	restored := exchange.NewEngine(newRegistry(), "fee", 10)
	seqGen := sequence.New(0)

	lastSeq, err := ReplayFromWAL(st.walDir, 0, restored, seqGen)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), lastSeq)
	assert.Equal(t, uint64(7), seqGen.Current())

	for _, tok := range []exchange.Token{"T1", "T2"} {
		for _, acct := range []exchange.Account{"alice", "bob", "fee"} {
			assert.Equal(t, st.eng.BalanceOf(tok, acct), restored.BalanceOf(tok, acct),
				"available %s/%s", tok, acct)
			assert.Equal(t, st.eng.Reserved(tok, acct), restored.Reserved(tok, acct),
				"reserved %s/%s", tok, acct)
		}
	}

	assert.Equal(t, st.eng.OrderCount(), restored.OrderCount())
	for id := uint64(1); id <= 2; id++ {
		want, _ := st.eng.Order(id)
		got, ok := restored.Order(id)
		require.True(t, ok)
		assert.Equal(t, want, got, "order %d", id)
		assert.Equal(t, st.eng.IsCanceled(id), restored.IsCanceled(id))
		assert.Equal(t, st.eng.IsFilled(id), restored.IsFilled(id))
	}
}

func TestReplaySkipsCoveredRecords(t *testing.T) {
	st := newTestStack(t)

	_, err := st.svc.Deposit("T1", "alice", 300)
	require.NoError(t, err)
	_, err = st.svc.Deposit("T2", "bob", 500)
	require.NoError(t, err)
	require.NoError(t, st.wal.Close())

	// Pretend a snapshot already covers both records.
	restored := exchange.NewEngine(newRegistry(), "fee", 10)
	seqGen := sequence.New(0)

	lastSeq, err := ReplayFromWAL(st.walDir, 2, restored, seqGen)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), lastSeq)
	assert.Equal(t, uint64(2), seqGen.Current())
	assert.Zero(t, restored.BalanceOf("T1", "alice"))
}

func TestReplayEmptyDir(t *testing.T) {
	restored := exchange.NewEngine(newRegistry(), "fee", 10)
	seqGen := sequence.New(0)

	lastSeq, err := ReplayFromWAL(t.TempDir(), 0, restored, seqGen)
	require.NoError(t, err)
	assert.Zero(t, lastSeq)
}

func TestSnapshotOnceTruncatesStorage(t *testing.T) {
	st := newTestStack(t)
	snapDir := t.TempDir()

	_, err := st.svc.Deposit("T1", "alice", 300)
	require.NoError(t, err)
	_, err = st.svc.MakeOrder("alice", "T2", 200, "T1", 100)
	require.NoError(t, err)

	// Pretend the broadcaster delivered both events.
	require.NoError(t, st.outbox.MarkAcked(1, uint8(exchange.EvDeposit), nil))
	require.NoError(t, st.outbox.MarkAcked(2, uint8(exchange.EvOrderCreated), nil))

	st.svc.snapshotOnce(&snapshot.Writer{Dir: snapDir})

	// Acked entries up to the snapshot seq are gone.
	count := 0
	require.NoError(t, st.outbox.ScanPending(func(*outbox.Record) error {
		count++
		return nil
	}))
	assert.Zero(t, count)
	_, err = st.outbox.Get(1)
	assert.Error(t, err)
}
