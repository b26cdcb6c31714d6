package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/dex/x/dex/types"
)

func TestDefaultGenesisValidates(t *testing.T) {
	require.NoError(t, types.DefaultGenesis().Validate())
}

func TestGenesisRejectsPoolForBaseCurrency(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.PoolRecord{
			{Currency: types.DefaultParams().BaseCurrencyID, OtherReserve: sdkmath.NewInt(1), BaseReserve: sdkmath.NewInt(1), TotalShares: sdkmath.NewInt(1)},
		},
	}
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)
}

func TestGenesisRejectsShareSumMismatch(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.PoolRecord{
			{
				Currency:     types.CurrencyID(1),
				OtherReserve: sdkmath.NewInt(1000),
				BaseReserve:  sdkmath.NewInt(1000),
				TotalShares:  sdkmath.NewInt(1000),
				Shares: []types.ShareRecord{
					{Account: "alice", Shares: sdkmath.NewInt(400)},
				},
			},
		},
	}
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)
}

func TestGenesisAcceptsConsistentPool(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.PoolRecord{
			{
				Currency:     types.CurrencyID(1),
				OtherReserve: sdkmath.NewInt(1000),
				BaseReserve:  sdkmath.NewInt(1000),
				TotalShares:  sdkmath.NewInt(1000),
				Shares: []types.ShareRecord{
					{Account: "alice", Shares: sdkmath.NewInt(600)},
					{Account: "bob", Shares: sdkmath.NewInt(400)},
				},
			},
		},
	}
	require.NoError(t, gs.Validate())
}

func TestGenesisRejectsPartialZeroPool(t *testing.T) {
	gs := types.GenesisState{
		Params: types.DefaultParams(),
		Pools: []types.PoolRecord{
			{Currency: types.CurrencyID(1), OtherReserve: sdkmath.ZeroInt(), BaseReserve: sdkmath.NewInt(100), TotalShares: sdkmath.NewInt(100)},
		},
	}
	require.ErrorIs(t, gs.Validate(), types.ErrInvalidGenesis)
}
