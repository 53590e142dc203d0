package types

// Event types for the DEX module
const (
	EventTypePairCreated     = "pair_created"
	EventTypeAddLiquidity    = "add_liquidity"
	EventTypeRemoveLiquidity = "remove_liquidity"
	EventTypeSwap            = "swap"
	EventTypeFeesWithdrawn   = "fees_withdrawn"
)

// Event attribute keys
const (
	AttributeKeyPoolID       = "pool_id"
	AttributeKeyPoolAddress  = "pool_address"
	AttributeKeyCreator      = "creator"
	AttributeKeyProvider     = "provider"
	AttributeKeyTrader       = "trader"
	AttributeKeyOwner        = "owner"
	AttributeKeyTokenA       = "token_a"
	AttributeKeyTokenB       = "token_b"
	AttributeKeyAmountA      = "amount_a"
	AttributeKeyAmountB      = "amount_b"
	AttributeKeySharesMinted = "shares_minted"
	AttributeKeySharesBurned = "shares_burned"
	AttributeKeyTokenIn      = "token_in"
	AttributeKeyTokenOut     = "token_out"
	AttributeKeyAmountIn     = "amount_in"
	AttributeKeyAmountOut    = "amount_out"
	AttributeKeyFee          = "fee"
	AttributeKeyAmount       = "amount"
)
