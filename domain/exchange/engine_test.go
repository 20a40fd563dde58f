package exchange

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeToken is an in-memory external ledger with switchable failures.
type fakeToken struct {
	balances map[Account]uint64
	custody  uint64
	failPull bool
	failPush bool
}

func newFakeToken(funds map[Account]uint64) *fakeToken {
	if funds == nil {
		funds = make(map[Account]uint64)
	}
	return &fakeToken{balances: funds}
}

func (f *fakeToken) Pull(owner Account, amount uint64) error {
	if f.failPull {
		return errors.New("transfer not approved")
	}
	if f.balances[owner] < amount {
		return errors.New("insufficient external funds")
	}
	f.balances[owner] -= amount
	f.custody += amount
	return nil
}

func (f *fakeToken) Push(owner Account, amount uint64) error {
	if f.failPush {
		return errors.New("push rejected")
	}
	f.custody -= amount
	f.balances[owner] += amount
	return nil
}

func (f *fakeToken) BalanceOf(owner Account) uint64 {
	return f.balances[owner]
}

const (
	feeAccount = Account("fee")
	feePercent = uint64(10)

	user1 = Account("user1")
	user2 = Account("user2")

	token1 = Token("T1")
	token2 = Token("T2")
)

func newTestEngine(t *testing.T) (*Engine, *fakeToken, *fakeToken) {
	t.Helper()

	t1 := newFakeToken(map[Account]uint64{user1: 1_000, user2: 1_000})
	t2 := newFakeToken(map[Account]uint64{user1: 1_000, user2: 1_000})

	reg := NewRegistry()
	reg.Register(token1, t1)
	reg.Register(token2, t2)

	return NewEngine(reg, feeAccount, feePercent), t1, t2
}

func TestDeposit(t *testing.T) {
	eng, t1, _ := newTestEngine(t)

	ev, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)

	assert.Equal(t, uint64(100), eng.BalanceOf(token1, user1))
	assert.Equal(t, uint64(100), t1.custody)
	assert.Equal(t, uint64(900), t1.BalanceOf(user1))

	assert.Equal(t, DepositEvent{
		Token: token1, User: user1, Amount: 100, Balance: 100,
	}, ev)
}

func TestDepositRejectedPullLeavesNoState(t *testing.T) {
	eng, t1, _ := newTestEngine(t)
	t1.failPull = true

	_, err := eng.DepositToken(token1, user1, 100)
	require.ErrorIs(t, err, ErrTransferRejected)

	assert.Zero(t, eng.BalanceOf(token1, user1))
	assert.Zero(t, t1.custody)
}

func TestDepositUnknownToken(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.DepositToken(Token("nope"), user1, 100)
	require.ErrorIs(t, err, ErrTransferRejected)
}

func TestWithdraw(t *testing.T) {
	eng, t1, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)

	ev, err := eng.WithdrawToken(token1, user1, 100)
	require.NoError(t, err)

	assert.Zero(t, eng.BalanceOf(token1, user1))
	assert.Zero(t, t1.custody)
	assert.Equal(t, uint64(1_000), t1.BalanceOf(user1))
	assert.Equal(t, WithdrawEvent{
		Token: token1, User: user1, Amount: 100, Balance: 0,
	}, ev)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.WithdrawToken(token1, user1, 100)
	require.ErrorIs(t, err, ErrInsufficientBalance)
}

func TestWithdrawRejectedPushLeavesNoDebit(t *testing.T) {
	eng, t1, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)

	t1.failPush = true
	_, err = eng.WithdrawToken(token1, user1, 60)
	require.ErrorIs(t, err, ErrTransferRejected)

	assert.Equal(t, uint64(100), eng.BalanceOf(token1, user1))
}

func TestMakeOrderReservesGiveAmount(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)

	ev, err := eng.MakeOrder(user1, token2, 50, token1, 100)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), ev.ID)
	assert.Equal(t, uint64(1), eng.OrderCount())
	assert.Zero(t, eng.BalanceOf(token1, user1))
	assert.Equal(t, uint64(100), eng.Reserved(token1, user1))

	o, ok := eng.Order(1)
	require.True(t, ok)
	assert.Equal(t, user1, o.Owner)
	assert.Equal(t, token2, o.TokenGet)
	assert.Equal(t, uint64(50), o.AmountGet)
	assert.Equal(t, token1, o.TokenGive)
	assert.Equal(t, uint64(100), o.AmountGive)
	assert.NotZero(t, o.CreatedAt)
}

func TestMakeOrderInsufficientBalance(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.MakeOrder(user1, token2, 50, token1, 100)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Zero(t, eng.OrderCount())
}

func TestMakeOrderZeroAmount(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)

	_, err = eng.MakeOrder(user1, token2, 0, token1, 100)
	require.ErrorIs(t, err, ErrZeroAmount)

	_, err = eng.MakeOrder(user1, token2, 50, token1, 0)
	require.ErrorIs(t, err, ErrZeroAmount)

	assert.Zero(t, eng.OrderCount())
	assert.Equal(t, uint64(100), eng.BalanceOf(token1, user1))
}

func TestCancelOrderRestoresReservation(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)
	_, err = eng.MakeOrder(user1, token2, 50, token1, 100)
	require.NoError(t, err)

	require.False(t, eng.IsCanceled(1))

	ev, err := eng.CancelOrder(1, user1)
	require.NoError(t, err)

	assert.True(t, eng.IsCanceled(1))
	assert.Equal(t, uint64(100), eng.BalanceOf(token1, user1))
	assert.Zero(t, eng.Reserved(token1, user1))
	assert.Equal(t, uint64(1), ev.ID)
	assert.Equal(t, user1, ev.User)
}

func TestCancelOrderPreconditionOrder(t *testing.T) {
	eng, _, _ := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)
	_, err = eng.MakeOrder(user1, token2, 50, token1, 100)
	require.NoError(t, err)

	// Non-owner on an existing order: not authorized.
	_, err = eng.CancelOrder(1, user2)
	require.ErrorIs(t, err, ErrNotAuthorized)

	// Unknown ID: not found, whoever asks.
	_, err = eng.CancelOrder(2, user1)
	require.ErrorIs(t, err, ErrOrderNotFound)

	// Second cancel: already canceled.
	_, err = eng.CancelOrder(1, user1)
	require.NoError(t, err)
	_, err = eng.CancelOrder(1, user1)
	require.ErrorIs(t, err, ErrAlreadyCanceled)
}

func TestCancelFilledOrder(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	makeAndFundFill(t, eng)

	_, err := eng.FillOrder(1, user2)
	require.NoError(t, err)

	_, err = eng.CancelOrder(1, user1)
	require.ErrorIs(t, err, ErrAlreadyFilled)
}

// makeAndFundFill sets up order 1 (user1 gives 100 T1 for 200 T2) and
// deposits enough T2 for user2 to fill it, fee included.
func makeAndFundFill(t *testing.T, eng *Engine) {
	t.Helper()

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)
	_, err = eng.MakeOrder(user1, token2, 200, token1, 100)
	require.NoError(t, err)

	// fee = 200 * 10% = 20
	_, err = eng.DepositToken(token2, user2, 220)
	require.NoError(t, err)
}

func TestFillOrder(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	makeAndFundFill(t, eng)

	ev, err := eng.FillOrder(1, user2)
	require.NoError(t, err)

	// Maker receives the get-amount.
	assert.Zero(t, eng.BalanceOf(token1, user1))
	assert.Equal(t, uint64(200), eng.BalanceOf(token2, user1))
	assert.Zero(t, eng.Reserved(token1, user1))

	// Filler pays get+fee, receives the give-amount.
	assert.Equal(t, uint64(100), eng.BalanceOf(token1, user2))
	assert.Zero(t, eng.BalanceOf(token2, user2))

	// Fee account collects in the get-token.
	assert.Equal(t, uint64(20), eng.BalanceOf(token2, feeAccount))

	assert.True(t, eng.IsFilled(1))
	assert.Equal(t, user2, ev.User)
	assert.Equal(t, user1, ev.Creator)
	assert.Equal(t, uint64(200), ev.AmountGet)
	assert.Equal(t, uint64(100), ev.AmountGive)
	assert.NotZero(t, ev.Timestamp)
}

func TestFillOrderFailures(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		_, err := eng.FillOrder(2, user2)
		require.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("canceled", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		makeAndFundFill(t, eng)
		_, err := eng.CancelOrder(1, user1)
		require.NoError(t, err)

		_, err = eng.FillOrder(1, user2)
		require.ErrorIs(t, err, ErrOrderCanceled)
	})

	t.Run("already filled", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		makeAndFundFill(t, eng)
		_, err := eng.FillOrder(1, user2)
		require.NoError(t, err)

		_, err = eng.FillOrder(1, user2)
		require.ErrorIs(t, err, ErrAlreadyFilled)
	})

	t.Run("self fill", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		makeAndFundFill(t, eng)
		_, err := eng.FillOrder(1, user1)
		require.ErrorIs(t, err, ErrSelfFill)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		_, err := eng.DepositToken(token1, user1, 100)
		require.NoError(t, err)
		_, err = eng.MakeOrder(user1, token2, 200, token1, 100)
		require.NoError(t, err)

		_, err = eng.FillOrder(1, user2)
		require.ErrorIs(t, err, ErrInsufficientBalance)
	})

	t.Run("balance covers amount but not fee", func(t *testing.T) {
		eng, _, _ := newTestEngine(t)
		_, err := eng.DepositToken(token1, user1, 100)
		require.NoError(t, err)
		_, err = eng.MakeOrder(user1, token2, 200, token1, 100)
		require.NoError(t, err)
		_, err = eng.DepositToken(token2, user2, 200)
		require.NoError(t, err)

		_, err = eng.FillOrder(1, user2)
		require.ErrorIs(t, err, ErrInsufficientBalance)

		// Nothing moved.
		assert.Equal(t, uint64(200), eng.BalanceOf(token2, user2))
		assert.Equal(t, uint64(100), eng.Reserved(token1, user1))
		assert.False(t, eng.IsFilled(1))
	})
}

// A near-max get-amount must not wrap the affordability check: the
// wrapped sum would let a filler holding a sliver of the real total
// pass the balance check and mint value for the owner.
func TestFillOrderHugeAmountsDoNotWrap(t *testing.T) {
	const hugeGet = uint64(math.MaxUint64 - 1)
	// hugeGet + fee(hugeGet, 10%) modulo 2^64.
	const wrappedTotal = uint64(1844674407370955159)

	t1 := newFakeToken(map[Account]uint64{user1: 1_000})
	t2 := newFakeToken(map[Account]uint64{user2: math.MaxUint64})
	reg := NewRegistry()
	reg.Register(token1, t1)
	reg.Register(token2, t2)
	eng := NewEngine(reg, feeAccount, feePercent)

	_, err := eng.DepositToken(token1, user1, 100)
	require.NoError(t, err)
	_, err = eng.MakeOrder(user1, token2, hugeGet, token1, 100)
	require.NoError(t, err)

	_, err = eng.DepositToken(token2, user2, wrappedTotal)
	require.NoError(t, err)

	_, err = eng.FillOrder(1, user2)
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// Nothing moved, nothing minted.
	assert.Equal(t, wrappedTotal, eng.BalanceOf(token2, user2))
	assert.Zero(t, eng.BalanceOf(token2, user1))
	assert.Zero(t, eng.BalanceOf(token2, feeAccount))
	assert.Equal(t, uint64(100), eng.Reserved(token1, user1))
	assert.False(t, eng.IsFilled(1))
}

// Custody conservation: per token, everything pulled in externally is
// exactly the sum of available+reserved across all accounts.
func TestConservation(t *testing.T) {
	eng, t1, t2 := newTestEngine(t)

	_, err := eng.DepositToken(token1, user1, 300)
	require.NoError(t, err)
	_, err = eng.DepositToken(token2, user2, 500)
	require.NoError(t, err)
	_, err = eng.MakeOrder(user1, token2, 200, token1, 100)
	require.NoError(t, err)
	_, err = eng.FillOrder(1, user2)
	require.NoError(t, err)
	_, err = eng.WithdrawToken(token1, user1, 50)
	require.NoError(t, err)

	sums := map[Token]uint64{}
	eng.WalkBalances(func(tok Token, _ Account, available, reserved uint64) {
		sums[tok] += available + reserved
	})

	assert.Equal(t, t1.custody, sums[token1])
	assert.Equal(t, t2.custody, sums[token2])
}
