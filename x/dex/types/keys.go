package types

const (
	// ModuleName defines the module name.
	ModuleName = "dex"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName

	// RouterKey is the message route for the module.
	RouterKey = ModuleName

	// MemStoreKey defines the in-memory store key; neither the keeper nor
	// the test harness mounts it.
	MemStoreKey = "mem_dex"
)

// Store key prefixes. Every key in the module's KVStore partition starts
// with one of these, the way x/dex/keeper/keys.go prefixes every key in the
// teacher module.
var (
	// PoolKeyPrefix prefixes Pool[c] = (other_reserve, base_reserve) records.
	PoolKeyPrefix = []byte{0x01}

	// TotalSharesKeyPrefix prefixes TotalShares[c] records.
	TotalSharesKeyPrefix = []byte{0x02}

	// SharesKeyPrefix prefixes Shares[c, account] records.
	SharesKeyPrefix = []byte{0x03}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x04}
)

// PoolKey returns the store key for Pool[currency].
func PoolKey(currency CurrencyID) []byte {
	return append(append([]byte{}, PoolKeyPrefix...), currency.Bytes()...)
}

// TotalSharesKey returns the store key for TotalShares[currency].
func TotalSharesKey(currency CurrencyID) []byte {
	return append(append([]byte{}, TotalSharesKeyPrefix...), currency.Bytes()...)
}

// SharesKeyPrefixFor returns the iteration prefix for all Shares[currency, *] records.
func SharesKeyPrefixFor(currency CurrencyID) []byte {
	return append(append([]byte{}, SharesKeyPrefix...), currency.Bytes()...)
}

// SharesKey returns the store key for Shares[currency, account].
func SharesKey(currency CurrencyID, account []byte) []byte {
	key := SharesKeyPrefixFor(currency)
	return append(key, account...)
}
