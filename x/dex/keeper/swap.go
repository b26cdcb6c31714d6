package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/dex/x/dex/fixedpoint"
	"github.com/paw-chain/dex/x/dex/pricing"
	"github.com/paw-chain/dex/x/dex/types"
)

var _ types.DexManager = Keeper{}

// hopOtherToBase prices and applies an other->base leg against currency's
// pool, returning the base amount out. It writes the updated pool through
// ctx; Swap passes a cached context and commits it only once the whole route
// has passed validation.
func (k Keeper) hopOtherToBase(ctx context.Context, currency types.CurrencyID, otherIn sdkmath.Int, fee fixedpoint.Q) (sdkmath.Int, error) {
	pool, err := k.GetPool(ctx, currency)
	if err != nil {
		return sdkmath.Int{}, err
	}
	baseOut := pricing.CalculateSwapTargetAmount(pool.OtherReserve, pool.BaseReserve, otherIn, fee)
	if baseOut.IsZero() || baseOut.GT(pool.BaseReserve) {
		return sdkmath.ZeroInt(), nil
	}
	newPool := Pool{
		OtherReserve: pool.OtherReserve.Add(otherIn),
		BaseReserve:  pool.BaseReserve.Sub(baseOut),
	}
	if err := k.SetPool(ctx, currency, newPool); err != nil {
		return sdkmath.Int{}, err
	}
	return baseOut, nil
}

// hopBaseToOther prices and applies a base->other leg against currency's
// pool, returning the other amount out.
func (k Keeper) hopBaseToOther(ctx context.Context, currency types.CurrencyID, baseIn sdkmath.Int, fee fixedpoint.Q) (sdkmath.Int, error) {
	pool, err := k.GetPool(ctx, currency)
	if err != nil {
		return sdkmath.Int{}, err
	}
	otherOut := pricing.CalculateSwapTargetAmount(pool.BaseReserve, pool.OtherReserve, baseIn, fee)
	if otherOut.IsZero() || otherOut.GT(pool.OtherReserve) {
		return sdkmath.ZeroInt(), nil
	}
	newPool := Pool{
		BaseReserve:  pool.BaseReserve.Add(baseIn),
		OtherReserve: pool.OtherReserve.Sub(otherOut),
	}
	if err := k.SetPool(ctx, currency, newPool); err != nil {
		return sdkmath.Int{}, err
	}
	return otherOut, nil
}

// Swap implements spec.md §4.5.3: a three-way dispatch between a direct
// other<->base leg and a two-hop other->base->other route through the base
// currency. The two-hop route's first leg updates Pool[supplyCurrency] and
// its second leg prices against Pool[targetCurrency], which the first leg
// does not touch, so the second leg sees that pool's pre-swap reserves.
func (k Keeper) Swap(ctx context.Context, account sdk.AccAddress, supplyCurrency types.CurrencyID, supplyAmount sdkmath.Int, targetCurrency types.CurrencyID, minTargetAmount sdkmath.Int) (types.SwapRecord, error) {
	if supplyCurrency == targetCurrency {
		return types.SwapRecord{}, types.ErrCanNotSwapItself
	}
	if supplyAmount.IsNil() || supplyAmount.LTE(sdkmath.ZeroInt()) {
		return types.SwapRecord{}, types.ErrTokenNotEnough
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.SwapRecord{}, err
	}

	if !types.EnsureCanWithdraw(ctx, k.bankKeeper, account, supplyCurrency, supplyAmount) {
		k.metrics.recordSwap("insufficient_balance")
		return types.SwapRecord{}, types.ErrTokenNotEnough
	}

	// Pool updates go to a cached store and are written back only after the
	// route has priced, passed the min-target check and both transfers have
	// succeeded, so a rejected swap leaves every pool unchanged.
	cacheCtx, writeCache := sdk.UnwrapSDKContext(ctx).CacheContext()

	var targetAmount sdkmath.Int
	switch {
	case supplyCurrency == params.BaseCurrencyID:
		targetAmount, err = k.hopBaseToOther(cacheCtx, targetCurrency, supplyAmount, params.ExchangeFee)
	case targetCurrency == params.BaseCurrencyID:
		targetAmount, err = k.hopOtherToBase(cacheCtx, supplyCurrency, supplyAmount, params.ExchangeFee)
	default:
		var baseAmount sdkmath.Int
		baseAmount, err = k.hopOtherToBase(cacheCtx, supplyCurrency, supplyAmount, params.ExchangeFee)
		if err == nil && !baseAmount.IsZero() {
			targetAmount, err = k.hopBaseToOther(cacheCtx, targetCurrency, baseAmount, params.ExchangeFee)
		} else {
			targetAmount = sdkmath.ZeroInt()
		}
	}
	if err != nil {
		return types.SwapRecord{}, err
	}

	if targetAmount.IsZero() || targetAmount.LT(minTargetAmount) {
		k.metrics.recordSwap("rejected")
		return types.SwapRecord{}, types.ErrInacceptablePrice
	}

	moduleAddr := k.GetModuleAddress()
	if err := k.bankKeeper.SendCoins(ctx, account, moduleAddr, sdk.NewCoins(
		sdk.NewCoin(supplyCurrency.Denom(), supplyAmount),
	)); err != nil {
		return types.SwapRecord{}, err
	}
	if err := k.bankKeeper.SendCoins(ctx, moduleAddr, account, sdk.NewCoins(
		sdk.NewCoin(targetCurrency.Denom(), targetAmount),
	)); err != nil {
		return types.SwapRecord{}, err
	}
	writeCache()

	k.metrics.recordSwap("ok")

	return types.SwapRecord{
		Account:        account.String(),
		SupplyCurrency: supplyCurrency,
		SupplyAmount:   supplyAmount,
		TargetCurrency: targetCurrency,
		TargetAmount:   targetAmount,
	}, nil
}

// GetSupplyAmount implements types.DexManager, mirroring
// quote_required_supply: the quoted supply amount of supplyCurrency for
// receiving targetAmount of targetCurrency, read-only. The quote carries
// CalculateSwapSupplyAmount's truncation and is not an exact inverse of Swap.
func (k Keeper) GetSupplyAmount(ctx context.Context, supplyCurrency, targetCurrency types.CurrencyID, targetAmount sdkmath.Int) sdkmath.Int {
	if supplyCurrency == targetCurrency {
		return sdkmath.ZeroInt()
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return sdkmath.ZeroInt()
	}

	switch {
	case supplyCurrency == params.BaseCurrencyID:
		pool, err := k.GetPool(ctx, targetCurrency)
		if err != nil {
			return sdkmath.ZeroInt()
		}
		return pricing.CalculateSwapSupplyAmount(pool.BaseReserve, pool.OtherReserve, targetAmount, params.ExchangeFee)
	case targetCurrency == params.BaseCurrencyID:
		pool, err := k.GetPool(ctx, supplyCurrency)
		if err != nil {
			return sdkmath.ZeroInt()
		}
		return pricing.CalculateSwapSupplyAmount(pool.OtherReserve, pool.BaseReserve, targetAmount, params.ExchangeFee)
	default:
		targetPool, err := k.GetPool(ctx, targetCurrency)
		if err != nil {
			return sdkmath.ZeroInt()
		}
		baseNeeded := pricing.CalculateSwapSupplyAmount(targetPool.BaseReserve, targetPool.OtherReserve, targetAmount, params.ExchangeFee)
		if baseNeeded.IsZero() {
			return sdkmath.ZeroInt()
		}
		supplyPool, err := k.GetPool(ctx, supplyCurrency)
		if err != nil {
			return sdkmath.ZeroInt()
		}
		return pricing.CalculateSwapSupplyAmount(supplyPool.OtherReserve, supplyPool.BaseReserve, baseNeeded, params.ExchangeFee)
	}
}

// ExchangeCurrency implements types.DexManager for intra-runtime callers,
// routing through the same Swap logic a MsgSwap handler uses, with no
// slippage floor (the caller is another module, not an end user placing a
// priced order).
func (k Keeper) ExchangeCurrency(ctx context.Context, account sdk.AccAddress, supply, target types.CurrencyAmount) error {
	_, err := k.Swap(ctx, account, supply.Currency, supply.Amount, target.Currency, sdkmath.ZeroInt())
	return err
}
