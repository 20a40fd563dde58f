package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookAppendAssignsSequentialIDs(t *testing.T) {
	b := NewBook()

	assert.Zero(t, b.Count())

	id1 := b.Append(user1, token2, 50, token1, 100, 1234)
	id2 := b.Append(user2, token1, 10, token2, 20, 1235)

	assert.Equal(t, uint64(1), id1)
	assert.Equal(t, uint64(2), id2)
	assert.Equal(t, uint64(2), b.Count())
}

func TestBookGetReturnsCopy(t *testing.T) {
	b := NewBook()
	b.Append(user1, token2, 50, token1, 100, 1234)

	o, ok := b.Get(1)
	require.True(t, ok)

	o.AmountGet = 999

	again, _ := b.Get(1)
	assert.Equal(t, uint64(50), again.AmountGet)
}

func TestBookGetUnknown(t *testing.T) {
	b := NewBook()

	_, ok := b.Get(0)
	assert.False(t, ok)
	_, ok = b.Get(7)
	assert.False(t, ok)
}

func TestBookStatusFlags(t *testing.T) {
	b := NewBook()
	b.Append(user1, token2, 50, token1, 100, 1234)
	b.Append(user1, token2, 50, token1, 100, 1234)

	assert.False(t, b.IsCanceled(1))
	assert.False(t, b.IsFilled(2))

	b.MarkCanceled(1)
	b.MarkFilled(2)

	assert.True(t, b.IsCanceled(1))
	assert.False(t, b.IsFilled(1))
	assert.True(t, b.IsFilled(2))
	assert.False(t, b.IsCanceled(2))
}

func TestBookWalkSkipsRestoreGaps(t *testing.T) {
	b := NewBook()

	// Restoring only ID 5 leaves 1..4 unassigned; Walk must not trip
	// over the gap.
	b.Restore(Order{ID: 5, Owner: user1, TokenGet: token2, AmountGet: 50,
		TokenGive: token1, AmountGive: 100, CreatedAt: 1234}, false, false)

	var ids []uint64
	b.Walk(func(o Order, _, _ bool) {
		ids = append(ids, o.ID)
	})
	assert.Equal(t, []uint64{5}, ids)
}

func TestBookRestoreResumesIDSequence(t *testing.T) {
	b := NewBook()

	b.Restore(Order{ID: 5, Owner: user1, TokenGet: token2, AmountGet: 50,
		TokenGive: token1, AmountGive: 100, CreatedAt: 1234}, true, false)

	assert.True(t, b.IsCanceled(5))
	assert.False(t, b.IsFilled(5))

	id := b.Append(user2, token1, 10, token2, 20, 1235)
	assert.Equal(t, uint64(6), id)
}
