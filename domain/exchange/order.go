package exchange

// Token identifies an external fungible-token ledger.
type Token string

// Account identifies an owner on the exchange.
type Account string

// Order is a pure domain entity. Immutable once created;
// status lives in the Book's canceled/filled sets, not here.
type Order struct {
	ID         uint64
	Owner      Account
	TokenGet   Token
	AmountGet  uint64
	TokenGive  Token
	AmountGive uint64
	CreatedAt  int64
}
