package pricing_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/dex/x/dex/fixedpoint"
	"github.com/paw-chain/dex/x/dex/pricing"
)

func onePercent(t *testing.T) fixedpoint.Q {
	t.Helper()
	q, ok := fixedpoint.FromRational(sdkmath.NewInt(1), sdkmath.NewInt(100))
	require.True(t, ok)
	return q
}

// Scenario 4 of spec.md §8: Pool[BTC] = (1000, 1000), swap 100 supply, 1% fee.
// Staged 18-decimal fixed-point truncation (ratio first, then MulInt) puts
// new_target_pool at 909 (not the 910 the spec's prose narrative suggests —
// spec.md §8 itself flags this as something implementers must pin down by
// exact floor behavior rather than trust the narrative), so gross_out = 91
// and the 1% fee truncates to 0, netting 91.
func TestCalculateSwapTargetAmountSimpleSwap(t *testing.T) {
	fee := onePercent(t)
	out := pricing.CalculateSwapTargetAmount(sdkmath.NewInt(1000), sdkmath.NewInt(1000), sdkmath.NewInt(100), fee)
	require.Equal(t, sdkmath.NewInt(91), out)
}

func TestCalculateSwapTargetAmountZeroOnEmptyPool(t *testing.T) {
	fee := onePercent(t)
	out := pricing.CalculateSwapTargetAmount(sdkmath.ZeroInt(), sdkmath.ZeroInt(), sdkmath.NewInt(100), fee)
	require.True(t, out.IsZero())
}

func TestCalculateSwapTargetAmountNeverNegative(t *testing.T) {
	fee, ok := fixedpoint.FromRational(sdkmath.NewInt(99), sdkmath.NewInt(100))
	require.True(t, ok)
	out := pricing.CalculateSwapTargetAmount(sdkmath.NewInt(1000), sdkmath.NewInt(10), sdkmath.NewInt(1), fee)
	require.False(t, out.IsNegative())
}

func TestCalculateSwapSupplyAmountRoundTrips(t *testing.T) {
	fee := onePercent(t)
	supplyPool := sdkmath.NewInt(1_000_000)
	targetPool := sdkmath.NewInt(1_000_000)
	desiredOut := sdkmath.NewInt(1000)

	requiredSupply := pricing.CalculateSwapSupplyAmount(supplyPool, targetPool, desiredOut, fee)
	require.False(t, requiredSupply.IsZero())

	actualOut := pricing.CalculateSwapTargetAmount(supplyPool, targetPool, requiredSupply, fee)
	// P4: quoting then swapping yields at least the desired amount, modulo
	// one unit of truncation either way since the two functions are not
	// exact inverses (see SPEC_FULL.md §8).
	tolerance := sdkmath.NewInt(1)
	require.True(t, actualOut.GTE(desiredOut.Sub(tolerance)))
}

func TestCalculateSwapSupplyAmountZeroWhenUnfulfillable(t *testing.T) {
	fee := onePercent(t)
	out := pricing.CalculateSwapSupplyAmount(sdkmath.NewInt(100), sdkmath.NewInt(100), sdkmath.NewInt(1_000_000), fee)
	require.True(t, out.IsZero())
}

func TestCalculateSwapSupplyAmountZeroFee(t *testing.T) {
	out := pricing.CalculateSwapSupplyAmount(sdkmath.NewInt(1000), sdkmath.NewInt(1000), sdkmath.NewInt(100), fixedpoint.Zero)
	// x*y=k: (1000+in)*(1000-100) = 1000*1000 => in = 1000*1000/900 - 1000 = 111.11 -> floor 111
	require.Equal(t, sdkmath.NewInt(111), out)
}

// P2: constant-product non-decrease under fee.
func TestConstantProductNonDecreaseUnderFee(t *testing.T) {
	fee := onePercent(t)
	supplyPool := sdkmath.NewInt(1000)
	targetPool := sdkmath.NewInt(1000)
	supplyAmount := sdkmath.NewInt(50)

	out := pricing.CalculateSwapTargetAmount(supplyPool, targetPool, supplyAmount, fee)
	newSupplyPool := supplyPool.Add(supplyAmount)
	newTargetPool := targetPool.Sub(out)

	before := supplyPool.Mul(targetPool)
	after := newSupplyPool.Mul(newTargetPool)
	require.True(t, after.GTE(before))
}
