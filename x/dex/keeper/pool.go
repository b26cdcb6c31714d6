package keeper

import (
	"context"
	"encoding/binary"
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/paw-chain/dex/x/dex/types"
)

// Pool is the in-memory form of spec.md §3's Pool entity: a currency's
// (other_reserve, base_reserve) pair.
type Pool struct {
	OtherReserve sdkmath.Int
	BaseReserve  sdkmath.Int
}

// zeroPool is the pool spec.md describes for a currency that has never
// received liquidity: both reserves at zero.
func zeroPool() Pool {
	return Pool{OtherReserve: sdkmath.ZeroInt(), BaseReserve: sdkmath.ZeroInt()}
}

// encodePool serializes a Pool as the OtherReserve encoding prefixed by its
// 4-byte big-endian length, followed by the BaseReserve encoding, using the
// same binary-marshal-a-math.Int primitive
// x/dex/keeper/liquidity.go's SetLiquidity uses for a single share value.
func encodePool(p Pool) ([]byte, error) {
	otherBz, err := p.OtherReserve.Marshal()
	if err != nil {
		return nil, err
	}
	baseBz, err := p.BaseReserve.Marshal()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 4+len(otherBz)+len(baseBz))
	binary.BigEndian.PutUint32(out[:4], uint32(len(otherBz)))
	copy(out[4:4+len(otherBz)], otherBz)
	copy(out[4+len(otherBz):], baseBz)
	return out, nil
}

func decodePool(bz []byte) (Pool, error) {
	if len(bz) < 4 {
		return Pool{}, fmt.Errorf("dex: malformed pool record")
	}
	otherLen := binary.BigEndian.Uint32(bz[:4])
	rest := bz[4:]
	if uint32(len(rest)) < otherLen {
		return Pool{}, fmt.Errorf("dex: malformed pool record")
	}
	var other, base sdkmath.Int
	if err := other.Unmarshal(rest[:otherLen]); err != nil {
		return Pool{}, err
	}
	if err := base.Unmarshal(rest[otherLen:]); err != nil {
		return Pool{}, err
	}
	return Pool{OtherReserve: other, BaseReserve: base}, nil
}

// GetPool returns Pool[currency], or the zero pool if none has been created
// yet (spec.md §3: "created lazily on first add_liquidity").
func (k Keeper) GetPool(ctx context.Context, currency types.CurrencyID) (Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(currency))
	if bz == nil {
		return zeroPool(), nil
	}
	return decodePool(bz)
}

// SetPool persists Pool[currency].
func (k Keeper) SetPool(ctx context.Context, currency types.CurrencyID, pool Pool) error {
	bz, err := encodePool(pool)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(types.PoolKey(currency), bz)
	return nil
}

// IteratePools visits every currency that has a stored pool record,
// including pools whose reserves have been withdrawn back to zero.
func (k Keeper) IteratePools(ctx context.Context, cb func(currency types.CurrencyID, pool Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		currencyBz := key[len(types.PoolKeyPrefix):]
		currency := types.CurrencyID(binary.BigEndian.Uint64(currencyBz))

		pool, err := decodePool(iterator.Value())
		if err != nil {
			return err
		}
		if cb(currency, pool) {
			break
		}
	}
	return nil
}
