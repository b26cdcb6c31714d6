package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/paw-chain/dex/testutil/keeper"
	"github.com/paw-chain/dex/x/dex/keeper"
	"github.com/paw-chain/dex/x/dex/types"
)

func TestGetPoolDefaultsToZero(t *testing.T) {
	k, ctx, _ := testkeeper.DexKeeper(t)

	pool, err := k.GetPool(ctx, types.CurrencyID(1))
	require.NoError(t, err)
	require.True(t, pool.OtherReserve.IsZero())
	require.True(t, pool.BaseReserve.IsZero())
}

func TestSetPoolRoundTrips(t *testing.T) {
	k, ctx, _ := testkeeper.DexKeeper(t)

	want := keeper.Pool{OtherReserve: sdkmath.NewInt(1000), BaseReserve: sdkmath.NewInt(2000)}
	require.NoError(t, k.SetPool(ctx, types.CurrencyID(7), want))

	got, err := k.GetPool(ctx, types.CurrencyID(7))
	require.NoError(t, err)
	require.True(t, want.OtherReserve.Equal(got.OtherReserve))
	require.True(t, want.BaseReserve.Equal(got.BaseReserve))
}

func TestIteratePoolsVisitsEveryPool(t *testing.T) {
	k, ctx, _ := testkeeper.DexKeeper(t)

	require.NoError(t, k.SetPool(ctx, types.CurrencyID(1), keeper.Pool{OtherReserve: sdkmath.NewInt(10), BaseReserve: sdkmath.NewInt(20)}))
	require.NoError(t, k.SetPool(ctx, types.CurrencyID(2), keeper.Pool{OtherReserve: sdkmath.NewInt(30), BaseReserve: sdkmath.NewInt(40)}))

	seen := map[uint64]bool{}
	err := k.IteratePools(ctx, func(currency types.CurrencyID, pool keeper.Pool) bool {
		seen[uint64(currency)] = true
		return false
	})
	require.NoError(t, err)
	require.True(t, seen[1])
	require.True(t, seen[2])
}
