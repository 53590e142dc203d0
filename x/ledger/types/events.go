package types

// Ledger events
const (
	EventTypeTransfer = "transfer"
	EventTypeApprove  = "approve"
	EventTypeMint     = "mint"

	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyOwner     = "owner"
	AttributeKeySpender   = "spender"
	AttributeKeyDenom     = "denom"
	AttributeKeyAmount    = "amount"
)
