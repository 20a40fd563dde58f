package exchange

// TokenLedger is the capability the engine holds on one external
// fungible-token ledger. Pull moves owner's tokens into exchange
// custody (requires prior authorization on the external side), Push
// moves them back out. Either can fail; the engine treats failure as
// an ordinary error and never assumes success.
type TokenLedger interface {
	Pull(owner Account, amount uint64) error
	Push(owner Account, amount uint64) error
	BalanceOf(owner Account) uint64
}

// Registry maps token identifiers to their external ledgers.
type Registry struct {
	ledgers map[Token]TokenLedger
}

func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[Token]TokenLedger)}
}

func (r *Registry) Register(token Token, l TokenLedger) {
	r.ledgers[token] = l
}

func (r *Registry) Lookup(token Token) (TokenLedger, bool) {
	l, ok := r.ledgers[token]
	return l, ok
}
