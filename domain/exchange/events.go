package exchange

// EventType discriminates outbox payloads.
type EventType uint8

const (
	EvDeposit EventType = iota + 1
	EvWithdraw
	EvOrderCreated
	EvOrderCanceled
	EvOrderFilled
)

func (t EventType) String() string {
	switch t {
	case EvDeposit:
		return "Deposit"
	case EvWithdraw:
		return "Withdraw"
	case EvOrderCreated:
		return "OrderCreated"
	case EvOrderCanceled:
		return "OrderCanceled"
	case EvOrderFilled:
		return "OrderFilled"
	default:
		return "Unknown"
	}
}

// Event is produced by every successful engine mutation and handed to
// the service layer for outbox persistence and broadcast.
type Event interface {
	Type() EventType
}

type DepositEvent struct {
	Token   Token   `json:"token"`
	User    Account `json:"user"`
	Amount  uint64  `json:"amount"`
	Balance uint64  `json:"balance"`
}

func (DepositEvent) Type() EventType { return EvDeposit }

type WithdrawEvent struct {
	Token   Token   `json:"token"`
	User    Account `json:"user"`
	Amount  uint64  `json:"amount"`
	Balance uint64  `json:"balance"`
}

func (WithdrawEvent) Type() EventType { return EvWithdraw }

type OrderCreatedEvent struct {
	ID         uint64  `json:"id"`
	User       Account `json:"user"`
	TokenGet   Token   `json:"token_get"`
	AmountGet  uint64  `json:"amount_get"`
	TokenGive  Token   `json:"token_give"`
	AmountGive uint64  `json:"amount_give"`
	Timestamp  int64   `json:"timestamp"`
}

func (OrderCreatedEvent) Type() EventType { return EvOrderCreated }

type OrderCanceledEvent struct {
	ID         uint64  `json:"id"`
	User       Account `json:"user"`
	TokenGet   Token   `json:"token_get"`
	AmountGet  uint64  `json:"amount_get"`
	TokenGive  Token   `json:"token_give"`
	AmountGive uint64  `json:"amount_give"`
	Timestamp  int64   `json:"timestamp"`
}

func (OrderCanceledEvent) Type() EventType { return EvOrderCanceled }

// OrderFilledEvent: User is the filler, Creator the order owner.
type OrderFilledEvent struct {
	ID         uint64  `json:"id"`
	User       Account `json:"user"`
	Creator    Account `json:"creator"`
	TokenGet   Token   `json:"token_get"`
	AmountGet  uint64  `json:"amount_get"`
	TokenGive  Token   `json:"token_give"`
	AmountGive uint64  `json:"amount_give"`
	Timestamp  int64   `json:"timestamp"`
}

func (OrderFilledEvent) Type() EventType { return EvOrderFilled }
