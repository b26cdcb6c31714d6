package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/dex/x/dex/types"
)

// GetTotalShares returns TotalShares[currency], the sum of every account's
// share balance in that currency's pool.
func (k Keeper) GetTotalShares(ctx context.Context, currency types.CurrencyID) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.TotalSharesKey(currency))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var shares sdkmath.Int
	if err := shares.Unmarshal(bz); err != nil {
		return sdkmath.ZeroInt()
	}
	return shares
}

// SetTotalShares persists TotalShares[currency].
func (k Keeper) SetTotalShares(ctx context.Context, currency types.CurrencyID, shares sdkmath.Int) error {
	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.TotalSharesKey(currency), bz)
	return nil
}

// GetShares returns Shares[currency][account], 0 if the account never added
// liquidity to that pool.
func (k Keeper) GetShares(ctx context.Context, currency types.CurrencyID, account string) sdkmath.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.SharesKey(currency, []byte(account)))
	if bz == nil {
		return sdkmath.ZeroInt()
	}
	var shares sdkmath.Int
	if err := shares.Unmarshal(bz); err != nil {
		return sdkmath.ZeroInt()
	}
	return shares
}

// SetShares persists Shares[currency][account]. A zero balance deletes the
// record rather than storing a zero, keeping the share-holder set (used by
// genesis export) exactly the accounts with a nonzero stake.
func (k Keeper) SetShares(ctx context.Context, currency types.CurrencyID, account string, shares sdkmath.Int) error {
	store := k.getStore(ctx)
	key := types.SharesKey(currency, []byte(account))
	if shares.IsNil() || shares.IsZero() {
		store.Delete(key)
		return nil
	}
	bz, err := shares.Marshal()
	if err != nil {
		return err
	}
	store.Set(key, bz)
	return nil
}

// AddLiquidityShareResult is the pure outcome of crediting otherAmount/
// baseAmount of liquidity against an existing pool, per spec.md §4.3.
type AddLiquidityShareResult struct {
	SharesMinted sdkmath.Int
	NewOther     sdkmath.Int
	NewBase      sdkmath.Int
}

// ComputeAddLiquidity implements spec.md §4.3's mint-on-deposit formula.
//
// On a virgin pool (totalShares == 0), shares minted equal
// max(otherAmount, baseAmount), matching
// original_source/modules/dex/src/lib.rs's
// rstd::cmp::max(max_other_currency_amount, max_base_currency_amount).
//
// On an existing pool, the share mint is derived from whichever side binds
// tighter, using the r_in <= r_pool tie-break spec.md documents: r_in =
// baseAmount/otherAmount, r_pool = pool.BaseReserve/pool.OtherReserve;
// r_in <= r_pool cross-multiplies to
// baseAmount*pool.OtherReserve <= otherAmount*pool.BaseReserve, which takes
// the base-binding branch.
func ComputeAddLiquidity(pool Pool, totalShares, otherAmount, baseAmount sdkmath.Int) (AddLiquidityShareResult, bool) {
	if otherAmount.IsNil() || baseAmount.IsNil() || otherAmount.LTE(sdkmath.ZeroInt()) || baseAmount.LTE(sdkmath.ZeroInt()) {
		return AddLiquidityShareResult{}, false
	}

	if totalShares.IsZero() || pool.BaseReserve.IsZero() {
		sharesMinted := baseAmount
		if otherAmount.GT(baseAmount) {
			sharesMinted = otherAmount
		}
		return AddLiquidityShareResult{
			SharesMinted: sharesMinted,
			NewOther:     otherAmount,
			NewBase:      baseAmount,
		}, true
	}

	// lhs = otherAmount*pool.BaseReserve, rhs = baseAmount*pool.OtherReserve;
	// r_in <= r_pool is rhs <= lhs, so the base-binding branch is taken when
	// rhs <= lhs (equivalently lhs >= rhs).
	lhs := otherAmount.Mul(pool.BaseReserve)
	rhs := baseAmount.Mul(pool.OtherReserve)

	var shareExchangeRate sdkmath.Int
	var newOther, newBase sdkmath.Int
	if rhs.LTE(lhs) {
		// Base-binding branch: price shares off the base side.
		shareExchangeRate = totalShares.Mul(baseAmount).Quo(pool.BaseReserve)
		newBase = pool.BaseReserve.Add(baseAmount)
		// Other side increases in the same proportion actually supplied,
		// capped at what the depositor offered.
		proportionalOther := pool.OtherReserve.Mul(baseAmount).Quo(pool.BaseReserve)
		if proportionalOther.GT(otherAmount) {
			proportionalOther = otherAmount
		}
		newOther = pool.OtherReserve.Add(proportionalOther)
	} else {
		// Other-binding branch: price shares off the other side.
		shareExchangeRate = totalShares.Mul(otherAmount).Quo(pool.OtherReserve)
		newOther = pool.OtherReserve.Add(otherAmount)
		proportionalBase := pool.BaseReserve.Mul(otherAmount).Quo(pool.OtherReserve)
		if proportionalBase.GT(baseAmount) {
			proportionalBase = baseAmount
		}
		newBase = pool.BaseReserve.Add(proportionalBase)
	}

	if shareExchangeRate.LTE(sdkmath.ZeroInt()) {
		return AddLiquidityShareResult{}, false
	}

	return AddLiquidityShareResult{
		SharesMinted: shareExchangeRate,
		NewOther:     newOther,
		NewBase:      newBase,
	}, true
}

// WithdrawLiquidityResult is the pure outcome of burning `shares` out of a
// pool holding `totalShares`, per spec.md §4.3's burn-on-withdraw formula.
type WithdrawLiquidityResult struct {
	OtherOut sdkmath.Int
	BaseOut  sdkmath.Int
	NewOther sdkmath.Int
	NewBase  sdkmath.Int
}

// ComputeWithdrawLiquidity returns the proportional (other, base) amounts
// owed for burning `shares` shares out of `totalShares`.
func ComputeWithdrawLiquidity(pool Pool, totalShares, shares sdkmath.Int) (WithdrawLiquidityResult, bool) {
	if shares.IsNil() || shares.LTE(sdkmath.ZeroInt()) || totalShares.IsNil() || shares.GT(totalShares) {
		return WithdrawLiquidityResult{}, false
	}

	otherOut := pool.OtherReserve.Mul(shares).Quo(totalShares)
	baseOut := pool.BaseReserve.Mul(shares).Quo(totalShares)

	return WithdrawLiquidityResult{
		OtherOut: otherOut,
		BaseOut:  baseOut,
		NewOther: pool.OtherReserve.Sub(otherOut),
		NewBase:  pool.BaseReserve.Sub(baseOut),
	}, true
}
