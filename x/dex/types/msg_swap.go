package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap is the swap operation of spec.md §4.5.3.
type MsgSwap struct {
	Account         string
	SupplyCurrency  CurrencyID
	SupplyAmount    sdkmath.Int
	TargetCurrency  CurrencyID
	MinTargetAmount sdkmath.Int
}

// NewMsgSwap builds a MsgSwap.
func NewMsgSwap(account string, supplyCurrency CurrencyID, supplyAmount sdkmath.Int, targetCurrency CurrencyID, minTargetAmount sdkmath.Int) *MsgSwap {
	return &MsgSwap{
		Account:         account,
		SupplyCurrency:  supplyCurrency,
		SupplyAmount:    supplyAmount,
		TargetCurrency:  targetCurrency,
		MinTargetAmount: minTargetAmount,
	}
}

// Route implements sdk.Msg.
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements sdk.Msg.
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements sdk.Msg.
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{account}
}

// GetSignBytes implements sdk.Msg.
func (msg MsgSwap) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg: spec.md §4.5.3, I5 (no self-swap).
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return ErrTokenNotEnough.Wrapf("invalid account address: %s", err)
	}
	if msg.SupplyCurrency == msg.TargetCurrency {
		return ErrCanNotSwapItself
	}
	if msg.SupplyAmount.IsNil() || msg.SupplyAmount.LTE(sdkmath.ZeroInt()) {
		return ErrTokenNotEnough.Wrap("supply_amount must be positive")
	}
	if msg.MinTargetAmount.IsNil() || msg.MinTargetAmount.IsNegative() {
		return ErrInacceptablePrice.Wrap("min_target_amount must not be negative")
	}
	return nil
}
