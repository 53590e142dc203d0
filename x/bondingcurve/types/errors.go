package types

import (
	"cosmossdk.io/errors"
)

// x/bondingcurve module sentinel errors
var (
	ErrCurveNotFound       = errors.Register(ModuleName, 2, "curve not found")
	ErrInvalidAmount       = errors.Register(ModuleName, 3, "invalid amount")
	ErrInsufficientBalance = errors.Register(ModuleName, 4, "insufficient balance")
	ErrInsolvencyGuard     = errors.Register(ModuleName, 5, "payout exceeds curve reserve")
	ErrInvalidSlope        = errors.Register(ModuleName, 6, "invalid slope")
	ErrInvalidDenom        = errors.Register(ModuleName, 7, "invalid denom")
	ErrDuplicateDenom      = errors.Register(ModuleName, 8, "curve denom already exists")
	ErrInvalidParams       = errors.Register(ModuleName, 9, "invalid parameters")
	ErrInvalidGenesis      = errors.Register(ModuleName, 10, "invalid genesis state")
	ErrOverflow            = errors.Register(ModuleName, 11, "arithmetic overflow")
	ErrInvalidAddress      = errors.Register(ModuleName, 12, "invalid address")
	ErrInvalidCurveState   = errors.Register(ModuleName, 13, "invalid curve state")
)
