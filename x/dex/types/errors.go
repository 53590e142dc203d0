package types

import (
	"cosmossdk.io/errors"
)

// DEX module sentinel errors
var (
	ErrPoolNotFound          = errors.Register(ModuleName, 2, "pool not found")
	ErrDuplicatePair         = errors.Register(ModuleName, 3, "pool already exists for pair")
	ErrInvalidTokenPair      = errors.Register(ModuleName, 4, "invalid token pair")
	ErrInvalidAmount         = errors.Register(ModuleName, 5, "invalid amount")
	ErrInsufficientLiquidity = errors.Register(ModuleName, 6, "insufficient liquidity in pool")
	ErrInsufficientShares    = errors.Register(ModuleName, 7, "insufficient liquidity shares")
	ErrInsufficientBalance   = errors.Register(ModuleName, 8, "insufficient balance")
	ErrPriceManipulation     = errors.Register(ModuleName, 9, "deposit ratio deviates from pool price")
	ErrInvariantViolation    = errors.Register(ModuleName, 10, "constant product invariant violated")
	ErrInsolvencyGuard       = errors.Register(ModuleName, 11, "payout would exceed pool reserve")
	ErrSlippageTooHigh       = errors.Register(ModuleName, 12, "output amount less than minimum required")
	ErrInvalidFee            = errors.Register(ModuleName, 13, "invalid pair creation fee")
	ErrUnauthorized          = errors.Register(ModuleName, 14, "unauthorized")
	ErrInvalidPoolState      = errors.Register(ModuleName, 15, "invalid pool state")
	ErrOverflow              = errors.Register(ModuleName, 16, "arithmetic overflow")
	ErrInvalidParams         = errors.Register(ModuleName, 17, "invalid params")
	ErrInvalidGenesis        = errors.Register(ModuleName, 18, "invalid genesis state")
	ErrInvalidAddress        = errors.Register(ModuleName, 19, "invalid address")
)
