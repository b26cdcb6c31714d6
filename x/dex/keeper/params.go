package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/paw-chain/dex/x/dex/fixedpoint"
	"github.com/paw-chain/dex/x/dex/types"
)

// GetParams returns the module's Config, or DefaultParams if genesis has
// not yet run.
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}
	if len(bz) < 8 {
		return types.Params{}, fmt.Errorf("dex: malformed params record")
	}
	baseCurrency := types.CurrencyID(binary.BigEndian.Uint64(bz[:8]))
	fee, ok := fixedpoint.FromBytes(bz[8:])
	if !ok {
		return types.Params{}, fmt.Errorf("dex: malformed params record")
	}
	return types.Params{BaseCurrencyID: baseCurrency, ExchangeFee: fee}, nil
}

// SetParams persists the module's Config. Callers must validate params
// before calling this (see types.Params.Validate).
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	feeBz := params.ExchangeFee.Bytes()
	out := make([]byte, 8+len(feeBz))
	binary.BigEndian.PutUint64(out[:8], uint64(params.BaseCurrencyID))
	copy(out[8:], feeBz)
	k.getStore(ctx).Set(types.ParamsKey, out)
	return nil
}
