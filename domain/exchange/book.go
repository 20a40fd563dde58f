package exchange

// Book is the order book store: an append-only, monotonically-ID'd
// collection of orders plus two status sets. Orders are never deleted
// and never mutated after creation.
//
// ID 0 is reserved and never assigned; the engine uses it as the
// "not found" sentinel.
type Book struct {
	orders   map[uint64]*Order
	nextID   uint64
	canceled map[uint64]struct{}
	filled   map[uint64]struct{}
}

func NewBook() *Book {
	return &Book{
		orders:   make(map[uint64]*Order),
		nextID:   1,
		canceled: make(map[uint64]struct{}),
		filled:   make(map[uint64]struct{}),
	}
}

// Append assigns the next sequential ID and stores the order.
func (b *Book) Append(owner Account, tokenGet Token, amountGet uint64, tokenGive Token, amountGive uint64, now int64) uint64 {
	id := b.nextID
	b.nextID++

	b.orders[id] = &Order{
		ID:         id,
		Owner:      owner,
		TokenGet:   tokenGet,
		AmountGet:  amountGet,
		TokenGive:  tokenGive,
		AmountGive: amountGive,
		CreatedAt:  now,
	}
	return id
}

// Get returns a copy of the stored order. The bool reports existence.
func (b *Book) Get(id uint64) (Order, bool) {
	o, ok := b.orders[id]
	if !ok {
		return Order{}, false
	}
	return *o, true
}

// Count returns the total number of orders ever created.
func (b *Book) Count() uint64 {
	return b.nextID - 1
}

// MarkCanceled flips the canceled set membership. Idempotency and
// state-machine checks are the engine's responsibility.
func (b *Book) MarkCanceled(id uint64) {
	b.canceled[id] = struct{}{}
}

func (b *Book) MarkFilled(id uint64) {
	b.filled[id] = struct{}{}
}

// IsCanceled reports false for unknown or unset IDs.
func (b *Book) IsCanceled(id uint64) bool {
	_, ok := b.canceled[id]
	return ok
}

func (b *Book) IsFilled(id uint64) bool {
	_, ok := b.filled[id]
	return ok
}

// Restore installs a snapshot order under its original ID, along with
// its status flags. The ID sequence resumes after the highest restored
// order.
func (b *Book) Restore(o Order, canceled, filled bool) {
	cp := o
	b.orders[o.ID] = &cp
	if o.ID >= b.nextID {
		b.nextID = o.ID + 1
	}
	if canceled {
		b.canceled[o.ID] = struct{}{}
	}
	if filled {
		b.filled[o.ID] = struct{}{}
	}
}

// Walk visits every order in creation order. Used by snapshotting.
// IDs with no stored order (possible after a non-contiguous Restore)
// are skipped.
func (b *Book) Walk(fn func(o Order, canceled, filled bool)) {
	for id := uint64(1); id < b.nextID; id++ {
		o, ok := b.orders[id]
		if !ok {
			continue
		}
		fn(*o, b.IsCanceled(id), b.IsFilled(id))
	}
}
