package types

import sdkmath "cosmossdk.io/math"

// AddLiquidityRecord is the structured payload of an AddLiquidity event,
// matching spec.md §6: AddLiquidity(account, cy, other_amt, base_amt, share).
type AddLiquidityRecord struct {
	Account     string
	Currency    CurrencyID
	OtherAmount sdkmath.Int
	BaseAmount  sdkmath.Int
	ShareAmount sdkmath.Int
}

// WithdrawLiquidityRecord is the structured payload of a WithdrawLiquidity
// event. spec.md §9 flags that the reference source emits base_amount twice
// here rather than (other_amount, base_amount); this repository emits the
// corrected pair — see SPEC_FULL.md §8 for the recorded decision.
type WithdrawLiquidityRecord struct {
	Account     string
	Currency    CurrencyID
	OtherAmount sdkmath.Int
	BaseAmount  sdkmath.Int
	ShareAmount sdkmath.Int
}

// SwapRecord is the structured payload of a Swap event: spec.md §6
// Swap(account, cy_in, amt_in, cy_out, amt_out).
type SwapRecord struct {
	Account        string
	SupplyCurrency CurrencyID
	SupplyAmount   sdkmath.Int
	TargetCurrency CurrencyID
	TargetAmount   sdkmath.Int
}
