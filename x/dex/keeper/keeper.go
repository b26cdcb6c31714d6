// Package keeper implements the dex module's storage and operation
// handlers: the pool store, share accounting, and the four operations of
// spec.md §4.5, wired the way x/dex/keeper/keeper.go wires the teacher
// module's keeper.
package keeper

import (
	"context"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/paw-chain/dex/x/dex/types"
)

// Keeper holds the dex module's storage handle and ledger collaborator.
type Keeper struct {
	storeKey           storetypes.StoreKey
	bankKeeper         types.BankKeeper
	metrics            *DEXMetrics
	moduleAddressCache sdk.AccAddress
}

// NewKeeper constructs a dex Keeper.
func NewKeeper(key storetypes.StoreKey, bankKeeper types.BankKeeper) Keeper {
	return Keeper{
		storeKey:           key,
		bankKeeper:         bankKeeper,
		metrics:            NewDEXMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// kvStoreProvider is implemented by both sdk.Context and any store provider
// passed in as a plain context.Context, letting getStore work either way.
type kvStoreProvider interface {
	KVStore(key storetypes.StoreKey) storetypes.KVStore
}

func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	if provider, ok := ctx.(kvStoreProvider); ok {
		return provider.KVStore(k.storeKey)
	}
	return sdk.UnwrapSDKContext(ctx).KVStore(k.storeKey)
}

// GetModuleAddress returns PoolAccount: the deterministic, module-derived
// account spec.md §3/§9 describes, matching the standard cosmos-sdk
// module-account derivation convention.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}

// GetStoreKey exposes the store key for test wiring.
func (k Keeper) GetStoreKey() storetypes.StoreKey {
	return k.storeKey
}
