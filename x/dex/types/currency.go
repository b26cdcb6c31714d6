package types

import (
	"encoding/binary"
	"fmt"
)

// CurrencyID is the opaque per-asset identifier spec.md §3 describes as "an
// unsigned integer in reference impl". One value is designated the base
// currency via module Params.
type CurrencyID uint64

// Bytes renders the currency id as a fixed-width big-endian key fragment.
func (c CurrencyID) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(c))
	return b
}

// Denom maps the currency id onto the bank module's coin denomination — the
// concrete form the "multi-currency ledger" collaborator of spec.md §6
// takes in this repository (cosmos-sdk x/bank).
func (c CurrencyID) Denom() string {
	return fmt.Sprintf("dex/%d", uint64(c))
}

// String implements fmt.Stringer.
func (c CurrencyID) String() string {
	return fmt.Sprintf("%d", uint64(c))
}
