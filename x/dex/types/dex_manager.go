package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DexManager is the intra-runtime interface other modules call into,
// matching spec.md §6: "A trait/interface DexManager with
// get_supply_amount(...) -> Balance and exchange_currency(...) -> ok|err for
// intra-runtime callers", grounded on
// original_source/modules/dex/src/lib.rs's
// `impl<T: Trait> DexManager<...> for Module<T>`.
type DexManager interface {
	// GetSupplyAmount mirrors quote_required_supply: the quoted supply
	// amount of supplyCurrency for receiving targetAmount of targetCurrency,
	// or zero if unpriceable or supplyCurrency == targetCurrency. The quote
	// is truncated and is not an exact inverse of a swap.
	GetSupplyAmount(ctx context.Context, supplyCurrency, targetCurrency CurrencyID, targetAmount sdkmath.Int) sdkmath.Int

	// ExchangeCurrency executes swap on behalf of another module, using the
	// same routing rules as the swap operation.
	ExchangeCurrency(ctx context.Context, account sdk.AccAddress, supply, target CurrencyAmount) error
}

// CurrencyAmount pairs a currency id with an amount, used for swap's
// supply/target tuples per spec.md §4.5.3.
type CurrencyAmount struct {
	Currency CurrencyID
	Amount   sdkmath.Int
}
