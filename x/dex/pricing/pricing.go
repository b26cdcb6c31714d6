// Package pricing implements the dex module's constant-product pricing
// formulas. Every function here is pure: no store access, no side effects,
// deterministic given its inputs. A returned zero balance means "not
// computable" — callers must treat it as a priced failure, never as a
// legitimate zero-amount trade.
package pricing

import (
	sdkmath "cosmossdk.io/math"

	"github.com/paw-chain/dex/x/dex/fixedpoint"
)

// checkedAddBalance returns a+b and true, or (0, false) if the sum would not
// fit in the kernel's 128-bit balance ceiling.
func checkedAddBalance(a, b sdkmath.Int) (sdkmath.Int, bool) {
	sum := a.Add(b)
	if sum.GT(fixedpoint.MaxBalance) {
		return sdkmath.ZeroInt(), false
	}
	return sum, true
}

// checkedSubBalance returns a-b and true, or (0, false) on underflow.
func checkedSubBalance(a, b sdkmath.Int) (sdkmath.Int, bool) {
	if b.GT(a) {
		return sdkmath.ZeroInt(), false
	}
	return a.Sub(b), true
}

// CalculateSwapTargetAmount computes the amount of the target asset a trade
// supplying supplyAmount of the supply asset receives, against pools of size
// supplyPool/targetPool, taxing the fee on the output. Returns zero if the
// trade cannot be priced (pool exhaustion, overflow, or a fee that would
// consume the entire output).
func CalculateSwapTargetAmount(supplyPool, targetPool, supplyAmount sdkmath.Int, fee fixedpoint.Q) sdkmath.Int {
	newSupplyPool, ok := checkedAddBalance(supplyPool, supplyAmount)
	if !ok {
		return sdkmath.ZeroInt()
	}

	ratio, ok := fixedpoint.FromRational(supplyPool, newSupplyPool)
	if !ok {
		return sdkmath.ZeroInt()
	}
	newTargetPool := ratio.MulInt(targetPool)
	if newTargetPool.IsZero() {
		return sdkmath.ZeroInt()
	}

	grossOut, ok := checkedSubBalance(targetPool, newTargetPool)
	if !ok {
		return sdkmath.ZeroInt()
	}

	feeAmount := fee.MulInt(grossOut)
	netOut, ok := checkedSubBalance(grossOut, feeAmount)
	if !ok {
		return sdkmath.ZeroInt()
	}
	return netOut
}

// CalculateSwapSupplyAmount computes the supply-asset amount required to buy
// exactly targetAmount of the target asset from pools of size
// supplyPool/targetPool. It is not an exact inverse of
// CalculateSwapTargetAmount: the fee is re-derived on the target side only
// (see SPEC_FULL.md §8), and every stage truncates toward zero, so swapping
// exactly the quoted amount can return more or less than targetAmount. On
// shallow pools the shortfall can exceed one unit (pools 7/100, zero fee,
// targetAmount 30 quote a supply of 2, which swaps for 23).
func CalculateSwapSupplyAmount(supplyPool, targetPool, targetAmount sdkmath.Int, fee fixedpoint.Q) sdkmath.Int {
	one, _ := fixedpoint.FromNatural(sdkmath.NewInt(1))
	oneMinusFee, ok := one.CheckedSub(fee)
	if !ok || oneMinusFee.IsZero() {
		return sdkmath.ZeroInt()
	}
	inverse, ok := one.CheckedDiv(oneMinusFee)
	if !ok {
		return sdkmath.ZeroInt()
	}
	targetNeeded := inverse.MulInt(targetAmount)

	newTargetPool, ok := checkedSubBalance(targetPool, targetNeeded)
	if !ok || newTargetPool.IsZero() {
		return sdkmath.ZeroInt()
	}

	ratio, ok := fixedpoint.FromRational(targetPool, newTargetPool)
	if !ok {
		return sdkmath.ZeroInt()
	}
	newSupplyPool := ratio.MulInt(supplyPool)

	supplyNeeded, ok := checkedSubBalance(newSupplyPool, supplyPool)
	if !ok {
		return sdkmath.ZeroInt()
	}
	return supplyNeeded
}
