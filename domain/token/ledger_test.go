package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex/domain/exchange"
)

func TestNewMintsSupplyToDeployer(t *testing.T) {
	l := New("Vex Token", "VEX", 1_000_000, "deployer")

	assert.Equal(t, "Vex Token", l.Name())
	assert.Equal(t, "VEX", l.Symbol())
	assert.Equal(t, uint64(1_000_000), l.TotalSupply())
	assert.Equal(t, uint64(1_000_000), l.BalanceOf("deployer"))
	assert.Zero(t, l.BalanceOf("anyone"))
}

func TestTransfer(t *testing.T) {
	l := New("Vex Token", "VEX", 1_000, "deployer")

	require.NoError(t, l.Transfer("deployer", "alice", 300))
	assert.Equal(t, uint64(700), l.BalanceOf("deployer"))
	assert.Equal(t, uint64(300), l.BalanceOf("alice"))

	require.ErrorIs(t, l.Transfer("alice", "bob", 301), ErrInsufficientFunds)
	assert.Equal(t, uint64(300), l.BalanceOf("alice"))
}

func TestApproveAndTransferFrom(t *testing.T) {
	l := New("Vex Token", "VEX", 1_000, "alice")

	l.Approve("alice", "exchange", 400)
	assert.Equal(t, uint64(400), l.Allowance("alice", "exchange"))

	require.NoError(t, l.TransferFrom("exchange", "alice", "exchange", 250))
	assert.Equal(t, uint64(750), l.BalanceOf("alice"))
	assert.Equal(t, uint64(250), l.BalanceOf("exchange"))
	assert.Equal(t, uint64(150), l.Allowance("alice", "exchange"))

	require.ErrorIs(t, l.TransferFrom("exchange", "alice", "exchange", 151),
		ErrInsufficientAllowance)
}

func TestTransferFromInsufficientFundsKeepsAllowance(t *testing.T) {
	l := New("Vex Token", "VEX", 100, "alice")

	l.Approve("alice", "exchange", 500)
	require.ErrorIs(t, l.TransferFrom("exchange", "alice", "exchange", 200),
		ErrInsufficientFunds)
	assert.Equal(t, uint64(500), l.Allowance("alice", "exchange"))
}

func TestApproveReplacesPrevious(t *testing.T) {
	l := New("Vex Token", "VEX", 100, "alice")

	l.Approve("alice", "exchange", 500)
	l.Approve("alice", "exchange", 10)
	assert.Equal(t, uint64(10), l.Allowance("alice", "exchange"))
}

func TestCustodyPullPush(t *testing.T) {
	l := New("Vex Token", "VEX", 1_000, "alice")
	c := Bind(l, "exchange")

	// Pull needs the owner's allowance for the exchange account.
	require.ErrorIs(t, c.Pull(exchange.Account("alice"), 100), ErrInsufficientAllowance)

	l.Approve("alice", "exchange", 100)
	require.NoError(t, c.Pull(exchange.Account("alice"), 100))
	assert.Equal(t, uint64(900), c.BalanceOf(exchange.Account("alice")))
	assert.Equal(t, uint64(100), l.BalanceOf("exchange"))

	require.NoError(t, c.Push(exchange.Account("alice"), 100))
	assert.Equal(t, uint64(1_000), c.BalanceOf(exchange.Account("alice")))
	assert.Zero(t, l.BalanceOf("exchange"))
}
