package types

import (
	sdkmath "cosmossdk.io/math"
)

// PoolRecord is the exported/imported form of a single currency's pool plus
// its share table, used by GenesisState. It supplements spec.md's data model
// with a serializable shape for genesis import/export, grounded on
// original_source/modules/dex/src/mock.rs building an explicit pool fixture
// for tests.
type PoolRecord struct {
	Currency     CurrencyID
	OtherReserve sdkmath.Int
	BaseReserve  sdkmath.Int
	TotalShares  sdkmath.Int
	Shares       []ShareRecord
}

// ShareRecord is one (account, shares) entry within a PoolRecord.
type ShareRecord struct {
	Account string
	Shares  sdkmath.Int
}

// GenesisState is the dex module's full exported state.
type GenesisState struct {
	Params Params
	Pools  []PoolRecord
}

// DefaultGenesis returns an empty dex module genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pools:  []PoolRecord{},
	}
}

// Validate checks invariants I1 (no pool for the base currency) and I2/I4
// (share conservation, and reserves/shares are all-zero or all-positive)
// over the exported pool set.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[CurrencyID]bool)
	for _, pool := range gs.Pools {
		if pool.Currency == gs.Params.BaseCurrencyID {
			return ErrInvalidGenesis.Wrapf("pool %s names the base currency", pool.Currency)
		}
		if seen[pool.Currency] {
			return ErrInvalidGenesis.Wrapf("duplicate pool for currency %s", pool.Currency)
		}
		seen[pool.Currency] = true

		if pool.OtherReserve.IsNil() || pool.BaseReserve.IsNil() || pool.TotalShares.IsNil() {
			return ErrInvalidGenesis.Wrapf("pool %s has a nil field", pool.Currency)
		}
		if pool.OtherReserve.IsNegative() || pool.BaseReserve.IsNegative() || pool.TotalShares.IsNegative() {
			return ErrInvalidGenesis.Wrapf("pool %s has a negative field", pool.Currency)
		}

		allZero := pool.OtherReserve.IsZero() && pool.BaseReserve.IsZero() && pool.TotalShares.IsZero()
		allPositive := pool.OtherReserve.IsPositive() && pool.BaseReserve.IsPositive() && pool.TotalShares.IsPositive()
		if !allZero && !allPositive {
			return ErrInvalidGenesis.Wrapf("pool %s violates I4: reserves/shares must be all zero or all positive", pool.Currency)
		}

		sumShares := sdkmath.ZeroInt()
		seenAccount := make(map[string]bool)
		for _, share := range pool.Shares {
			if seenAccount[share.Account] {
				return ErrInvalidGenesis.Wrapf("duplicate share entry for %s in pool %s", share.Account, pool.Currency)
			}
			seenAccount[share.Account] = true
			if share.Shares.IsNil() || share.Shares.IsNegative() {
				return ErrInvalidGenesis.Wrapf("invalid share amount for %s in pool %s", share.Account, pool.Currency)
			}
			sumShares = sumShares.Add(share.Shares)
		}
		if !sumShares.Equal(pool.TotalShares) {
			return ErrInvalidGenesis.Wrapf("I2 violated for pool %s: sum of shares %s != total shares %s",
				pool.Currency, sumShares, pool.TotalShares)
		}
	}
	return nil
}
