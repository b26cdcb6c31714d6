package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/dex/x/dex/fixedpoint"
)

// Params is the module's Config collaborator from spec.md §6/§9: the base
// currency id every pool is paired against, and the single global exchange
// fee. Both are validated on genesis import and never change mid-block.
type Params struct {
	BaseCurrencyID CurrencyID
	ExchangeFee    fixedpoint.Q
}

// DefaultParams mirrors x/dex/types/params.go's DefaultParams, scaled down to
// the two parameters spec.md's Config actually names.
func DefaultParams() Params {
	fee, _ := fixedpoint.FromRational(sdkmath.NewInt(1), sdkmath.NewInt(1000)) // 0.1%
	return Params{
		BaseCurrencyID: CurrencyID(0),
		ExchangeFee:    fee,
	}
}

// Validate enforces the "ExchangeFee < 1" configuration invariant spec.md §9
// calls out explicitly (GetExchangeFee >= 1 would make
// CalculateSwapSupplyAmount divide by zero or go negative).
func (p Params) Validate() error {
	one, _ := fixedpoint.FromNatural(sdkmath.NewInt(1))
	if _, ok := one.CheckedSub(p.ExchangeFee); !ok {
		return ErrInvalidParams.Wrap("exchange fee must be strictly less than 1")
	}
	if remainder, _ := one.CheckedSub(p.ExchangeFee); remainder.IsZero() {
		return ErrInvalidParams.Wrap("exchange fee must be strictly less than 1")
	}
	return nil
}
