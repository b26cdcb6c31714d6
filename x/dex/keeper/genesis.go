package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/paw-chain/dex/x/dex/types"
)

// InitGenesis seeds the store from a validated GenesisState, the way
// x/dex/keeper/genesis.go seeds the teacher module's pools on chain start.
func (k Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, genesis.Params); err != nil {
		return err
	}
	for _, record := range genesis.Pools {
		if err := k.SetPool(ctx, record.Currency, Pool{
			OtherReserve: record.OtherReserve,
			BaseReserve:  record.BaseReserve,
		}); err != nil {
			return err
		}
		if err := k.SetTotalShares(ctx, record.Currency, record.TotalShares); err != nil {
			return err
		}
		for _, share := range record.Shares {
			if err := k.SetShares(ctx, record.Currency, share.Account, share.Shares); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExportGenesis reads the store back into a GenesisState.
func (k Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.GenesisState{}, err
	}

	genesis := types.GenesisState{Params: params}
	var iterErr error
	if err := k.IteratePools(ctx, func(currency types.CurrencyID, pool Pool) bool {
		shares, err := k.exportShares(ctx, currency)
		if err != nil {
			iterErr = err
			return true
		}
		genesis.Pools = append(genesis.Pools, types.PoolRecord{
			Currency:     currency,
			OtherReserve: pool.OtherReserve,
			BaseReserve:  pool.BaseReserve,
			TotalShares:  k.GetTotalShares(ctx, currency),
			Shares:       shares,
		})
		return false
	}); err != nil {
		return types.GenesisState{}, err
	}
	if iterErr != nil {
		return types.GenesisState{}, iterErr
	}

	return genesis, nil
}

// exportShares walks every Shares[currency, *] entry in key order.
func (k Keeper) exportShares(ctx context.Context, currency types.CurrencyID) ([]types.ShareRecord, error) {
	prefix := types.SharesKeyPrefixFor(currency)
	store := k.getStore(ctx)
	iterator := store.Iterator(prefix, storetypes.PrefixEndBytes(prefix))
	defer iterator.Close()

	var records []types.ShareRecord
	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		if len(key) <= len(prefix) {
			continue
		}
		account := string(key[len(prefix):])
		var shares sdkmath.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			return nil, err
		}
		records = append(records, types.ShareRecord{Account: account, Shares: shares})
	}
	return records, nil
}
