package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgWithdrawLiquidity{}

// MsgWithdrawLiquidity is the withdraw_liquidity operation of spec.md §4.5.2.
type MsgWithdrawLiquidity struct {
	Account     string
	Currency    CurrencyID
	ShareAmount sdkmath.Int
}

// NewMsgWithdrawLiquidity builds a MsgWithdrawLiquidity.
func NewMsgWithdrawLiquidity(account string, currency CurrencyID, shareAmount sdkmath.Int) *MsgWithdrawLiquidity {
	return &MsgWithdrawLiquidity{
		Account:     account,
		Currency:    currency,
		ShareAmount: shareAmount,
	}
}

// Route implements sdk.Msg.
func (msg MsgWithdrawLiquidity) Route() string { return RouterKey }

// Type implements sdk.Msg.
func (msg MsgWithdrawLiquidity) Type() string { return "withdraw_liquidity" }

// GetSigners implements sdk.Msg.
func (msg MsgWithdrawLiquidity) GetSigners() []sdk.AccAddress {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{account}
}

// GetSignBytes implements sdk.Msg.
func (msg MsgWithdrawLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg: spec.md §4.5.2 step 1.
func (msg MsgWithdrawLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return ErrTokenNotEnough.Wrapf("invalid account address: %s", err)
	}
	if msg.ShareAmount.IsNil() || msg.ShareAmount.LTE(sdkmath.ZeroInt()) {
		return ErrShareNotEnough.Wrap("share_amount must be positive")
	}
	return nil
}
