package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paw-chain/dex/testutil/keeper"
)

func TestExportGenesisRoundTripsAfterAddLiquidity(t *testing.T) {
	k, ctx, bank := testkeeper.DexKeeper(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)

	bank.SetBalance(alice, sdk.NewCoins(
		sdk.NewCoin(otherCurrency.Denom(), sdkmath.NewInt(1000)),
		sdk.NewCoin(params.BaseCurrencyID.Denom(), sdkmath.NewInt(1000)),
	))
	_, err = k.AddLiquidity(ctx, alice, otherCurrency, sdkmath.NewInt(1000), sdkmath.NewInt(1000))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.Len(t, exported.Pools, 1)
	require.Equal(t, otherCurrency, exported.Pools[0].Currency)
	require.True(t, exported.Pools[0].TotalShares.Equal(sdkmath.NewInt(1000)))
	require.Len(t, exported.Pools[0].Shares, 1)
	require.Equal(t, alice.String(), exported.Pools[0].Shares[0].Account)

	k2, ctx2, _ := testkeeper.DexKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, exported))

	pool, err := k2.GetPool(ctx2, otherCurrency)
	require.NoError(t, err)
	require.True(t, pool.OtherReserve.Equal(sdkmath.NewInt(1000)))
	require.True(t, k2.GetShares(ctx2, otherCurrency, alice.String()).Equal(sdkmath.NewInt(1000)))
}
