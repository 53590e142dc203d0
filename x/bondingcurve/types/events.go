package types

// Event types for the bonding curve module
const (
	EventTypeCurveCreated  = "curve_created"
	EventTypeCurveBuy      = "curve_buy"
	EventTypeCurveSell     = "curve_sell"
	EventTypeCurveTransfer = "curve_transfer"
)

// Event attribute keys
const (
	AttributeKeyCurveID      = "curve_id"
	AttributeKeyCurveAddress = "curve_address"
	AttributeKeyDenom        = "denom"
	AttributeKeyCreator      = "creator"
	AttributeKeyBuyer        = "buyer"
	AttributeKeySeller       = "seller"
	AttributeKeySender       = "sender"
	AttributeKeyRecipient    = "recipient"
	AttributeKeySlope        = "slope"
	AttributeKeyValue        = "value"
	AttributeKeyAmount       = "amount"
	AttributeKeyMinted       = "minted"
	AttributeKeyBurned       = "burned"
	AttributeKeyPayout       = "payout"
	AttributeKeyFee          = "fee"
	AttributeKeyTotalSupply  = "total_supply"
)
