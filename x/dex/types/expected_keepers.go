package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the external ledger collaborator consumed by the dex keeper,
// matching spec.md §6's "Ledger" contract (transfer, ensure-can-withdraw,
// balance), narrowed to the subset x/dex/types/expected_keepers.go's
// BankKeeper interface actually exercises in the teacher module.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// EnsureCanWithdraw reports whether account holds at least amount of
// currency, the ledger-side precondition spec.md §4.5.1/§4.5.3 require
// before any transfer is attempted.
func EnsureCanWithdraw(ctx context.Context, bank BankKeeper, account sdk.AccAddress, currency CurrencyID, amount sdkmath.Int) bool {
	balance := bank.GetBalance(ctx, account, currency.Denom())
	return balance.Amount.GTE(amount)
}
