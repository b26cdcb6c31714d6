package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paw-chain/dex/testutil/keeper"
	"github.com/paw-chain/dex/x/dex/keeper"
	"github.com/paw-chain/dex/x/dex/types"
)

var (
	alice = sdk.AccAddress([]byte("alice_test_address_"))
	bob   = sdk.AccAddress([]byte("bob_test_address____"))
)

const otherCurrency = types.CurrencyID(1)

func TestAddLiquiditySeedsVirginPool(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(1000)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(1000)),
	))

	record, err := k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.NoError(t, err)
	require.True(t, record.ShareAmount.Equal(sdkmath.NewInt(1000)))

	pool, err := k.GetPool(ctx, otherCurrency)
	require.NoError(t, err)
	require.True(t, pool.OtherReserve.Equal(sdkmath.NewInt(1000)))
	require.True(t, pool.BaseReserve.Equal(sdkmath.NewInt(1000)))
	require.True(t, k.GetTotalShares(ctx, otherCurrency).Equal(sdkmath.NewInt(1000)))
}

func TestAddLiquidityRejectsBaseCurrency(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(1000))))

	_, err = k.AddLiquidity(ctx, alice, params.BaseCurrencyID, sdkmath.NewInt(100), sdkmath.NewInt(100))
	require.ErrorIs(t, err, types.ErrBaseCurrencyIDNotAllowed)
}

func TestAddLiquidityRejectsInsufficientBalance(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(10))))

	_, err = k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.ErrorIs(t, err, types.ErrTokenNotEnough)
	_ = params
}

// TestAddLiquiditySkewedTransfersOnlyTheCappedIncrement pins invariant I3:
// a skewed add (proposed ratio off the pool's own ratio) must debit the
// caller, and credit the module account, exactly the capped increments
// ComputeAddLiquidity computes — never the raw proposed maxima — so the
// module account's ledger balance always matches Pool[currency]'s reserves.
func TestAddLiquiditySkewedTransfersOnlyTheCappedIncrement(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	require.NoError(t, k.SetPool(ctx, otherCurrency, keeper.Pool{OtherReserve: sdkmath.NewInt(100), BaseReserve: sdkmath.NewInt(100)}))
	require.NoError(t, k.SetTotalShares(ctx, otherCurrency, sdkmath.NewInt(100)))
	bank.SetBalance(k.GetModuleAddress(), sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(100)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(100)),
	))

	bank.SetBalance(alice, sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(200)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(50)),
	))

	record, err := k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(200), sdkmath.NewInt(50))
	require.NoError(t, err)
	require.True(t, record.OtherAmount.Equal(sdkmath.NewInt(50)), "got %s", record.OtherAmount)
	require.True(t, record.BaseAmount.Equal(sdkmath.NewInt(50)), "got %s", record.BaseAmount)
	require.True(t, record.ShareAmount.Equal(sdkmath.NewInt(50)), "got %s", record.ShareAmount)

	pool, err := k.GetPool(ctx, otherCurrency)
	require.NoError(t, err)
	moduleBalance := bank.GetBalance(ctx, k.GetModuleAddress(), otherCurrency.Denom())
	require.True(t, moduleBalance.Amount.Equal(pool.OtherReserve), "module account balance must match pool reserve")

	aliceLeftover := bank.GetBalance(ctx, alice, otherCurrency.Denom())
	require.True(t, aliceLeftover.Amount.Equal(sdkmath.NewInt(150)), "uncapped excess must stay with the depositor")
}

func TestWithdrawLiquidityAllReturnsFullReserves(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(1000)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(1000)),
	))
	_, err = k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.NoError(t, err)

	record, err := k.WithdrawLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000))
	require.NoError(t, err)
	require.True(t, record.OtherAmount.Equal(sdkmath.NewInt(1000)))
	require.True(t, record.BaseAmount.Equal(sdkmath.NewInt(1000)))

	pool, err := k.GetPool(ctx, otherCurrency)
	require.NoError(t, err)
	require.True(t, pool.OtherReserve.IsZero())
	require.True(t, pool.BaseReserve.IsZero())
	require.True(t, k.GetTotalShares(ctx, otherCurrency).IsZero())
}

func TestWithdrawLiquidityRejectsMoreSharesThanHeld(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(1000)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(1000)),
	))
	_, err = k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.NoError(t, err)

	_, err = k.WithdrawLiquidity(ctx, bob, otherCurrency, sdkmath.NewInt(1))
	require.ErrorIs(t, err, types.ErrShareNotEnough)
}
