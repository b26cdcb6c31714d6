package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/dex/x/dex/types"
)

// AddLiquidity implements spec.md §4.5.1: deposit otherAmount of currency
// and baseAmount of the base currency, minting LP shares per §4.3.
func (k Keeper) AddLiquidity(ctx context.Context, account sdk.AccAddress, currency types.CurrencyID, otherAmount, baseAmount sdkmath.Int) (types.AddLiquidityRecord, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.AddLiquidityRecord{}, err
	}
	if currency == params.BaseCurrencyID {
		return types.AddLiquidityRecord{}, types.ErrBaseCurrencyIDNotAllowed
	}
	if otherAmount.IsNil() || baseAmount.IsNil() || otherAmount.LTE(sdkmath.ZeroInt()) || baseAmount.LTE(sdkmath.ZeroInt()) {
		return types.AddLiquidityRecord{}, types.ErrInvalidBalance
	}

	if !types.EnsureCanWithdraw(ctx, k.bankKeeper, account, currency, otherAmount) {
		return types.AddLiquidityRecord{}, types.ErrTokenNotEnough
	}
	if !types.EnsureCanWithdraw(ctx, k.bankKeeper, account, params.BaseCurrencyID, baseAmount) {
		return types.AddLiquidityRecord{}, types.ErrTokenNotEnough
	}

	pool, err := k.GetPool(ctx, currency)
	if err != nil {
		return types.AddLiquidityRecord{}, err
	}
	totalShares := k.GetTotalShares(ctx, currency)

	result, ok := ComputeAddLiquidity(pool, totalShares, otherAmount, baseAmount)
	if !ok {
		return types.AddLiquidityRecord{}, types.ErrInvalidLiquidityIncrement
	}

	// Transfer only the actual computed increments, never the caller's
	// proposed maxima: ComputeAddLiquidity caps one side on any
	// non-equal-ratio add, and Pool[currency] is only ever credited the
	// capped amount below. Moving the raw otherAmount/baseAmount here would
	// debit the user for more than the pool receives, violating I3.
	otherIncrement := result.NewOther.Sub(pool.OtherReserve)
	baseIncrement := result.NewBase.Sub(pool.BaseReserve)

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, account, moduleAddr, sdk.NewCoins(
		sdk.NewCoin(currency.Denom(), otherIncrement),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), baseIncrement),
	)); err != nil {
		return types.AddLiquidityRecord{}, err
	}

	if err := k.SetPool(ctx, currency, Pool{OtherReserve: result.NewOther, BaseReserve: result.NewBase}); err != nil {
		return types.AddLiquidityRecord{}, err
	}
	if err := k.SetTotalShares(ctx, currency, totalShares.Add(result.SharesMinted)); err != nil {
		return types.AddLiquidityRecord{}, err
	}
	accountShares := k.GetShares(ctx, currency, account.String())
	if err := k.SetShares(ctx, currency, account.String(), accountShares.Add(result.SharesMinted)); err != nil {
		return types.AddLiquidityRecord{}, err
	}

	k.metrics.recordLiquidityAdded(currency.String(), float64(otherIncrement.Int64()))

	return types.AddLiquidityRecord{
		Account:     account.String(),
		Currency:    currency,
		OtherAmount: otherIncrement,
		BaseAmount:  baseIncrement,
		ShareAmount: result.SharesMinted,
	}, nil
}

// WithdrawLiquidity implements spec.md §4.5.2: burn `shares` of currency's
// pool and return the proportional (other, base) amounts. Unlike the
// reference implementation's event (spec.md §9), the emitted record here
// carries the corrected (other_out, base_out) pair rather than duplicating
// base_out in both positions.
func (k Keeper) WithdrawLiquidity(ctx context.Context, account sdk.AccAddress, currency types.CurrencyID, shares sdkmath.Int) (types.WithdrawLiquidityRecord, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}
	if currency == params.BaseCurrencyID {
		return types.WithdrawLiquidityRecord{}, types.ErrBaseCurrencyIDNotAllowed
	}
	if shares.IsNil() || shares.LTE(sdkmath.ZeroInt()) {
		return types.WithdrawLiquidityRecord{}, types.ErrShareNotEnough
	}

	accountShares := k.GetShares(ctx, currency, account.String())
	if shares.GT(accountShares) {
		return types.WithdrawLiquidityRecord{}, types.ErrShareNotEnough
	}

	pool, err := k.GetPool(ctx, currency)
	if err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}
	totalShares := k.GetTotalShares(ctx, currency)

	result, ok := ComputeWithdrawLiquidity(pool, totalShares, shares)
	if !ok {
		return types.WithdrawLiquidityRecord{}, types.ErrInvalidLiquidityIncrement
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, account, sdk.NewCoins(
		sdk.NewCoin(currency.Denom(), result.OtherOut),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), result.BaseOut),
	)); err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}

	if err := k.SetPool(ctx, currency, Pool{OtherReserve: result.NewOther, BaseReserve: result.NewBase}); err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}
	if err := k.SetTotalShares(ctx, currency, totalShares.Sub(shares)); err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}
	if err := k.SetShares(ctx, currency, account.String(), accountShares.Sub(shares)); err != nil {
		return types.WithdrawLiquidityRecord{}, err
	}

	k.metrics.recordLiquidityRemoved(currency.String(), float64(result.OtherOut.Int64()))

	return types.WithdrawLiquidityRecord{
		Account:     account.String(),
		Currency:    currency,
		OtherAmount: result.OtherOut,
		BaseAmount:  result.BaseOut,
		ShareAmount: shares,
	}, nil
}
