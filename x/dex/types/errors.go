package types

import (
	"cosmossdk.io/errors"
)

// Sentinel errors for the dex module, registered against ModuleName the way
// x/dex/types/errors.go registers the teacher module's error taxonomy.
// Codes map 1:1 onto spec.md §7.
var (
	ErrBaseCurrencyIDNotAllowed  = errors.Register(ModuleName, 2, "base currency id not allowed here")
	ErrTokenNotEnough            = errors.Register(ModuleName, 3, "token balance not enough")
	ErrShareNotEnough            = errors.Register(ModuleName, 4, "liquidity share balance not enough")
	ErrInvalidBalance            = errors.Register(ModuleName, 5, "liquidity amount must be positive on both sides")
	ErrCanNotSwapItself          = errors.Register(ModuleName, 6, "cannot swap a currency for itself")
	ErrInacceptablePrice         = errors.Register(ModuleName, 7, "priced amount is not acceptable")
	ErrInvalidLiquidityIncrement = errors.Register(ModuleName, 8, "computed liquidity increment is invalid")
	ErrInvalidParams             = errors.Register(ModuleName, 9, "invalid module parameters")
	ErrInvalidGenesis            = errors.Register(ModuleName, 10, "invalid genesis state")
)
