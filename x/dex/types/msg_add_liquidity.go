package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity is the add_liquidity operation of spec.md §4.5.1.
type MsgAddLiquidity struct {
	Account        string
	OtherCurrency  CurrencyID
	MaxOtherAmount sdkmath.Int
	MaxBaseAmount  sdkmath.Int
}

// NewMsgAddLiquidity builds a MsgAddLiquidity.
func NewMsgAddLiquidity(account string, otherCurrency CurrencyID, maxOther, maxBase sdkmath.Int) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Account:        account,
		OtherCurrency:  otherCurrency,
		MaxOtherAmount: maxOther,
		MaxBaseAmount:  maxBase,
	}
}

// Route implements sdk.Msg.
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements sdk.Msg.
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements sdk.Msg.
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{account}
}

// GetSignBytes implements sdk.Msg.
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements sdk.Msg: spec.md §4.5.1 step 1.
func (msg MsgAddLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Account); err != nil {
		return ErrTokenNotEnough.Wrapf("invalid account address: %s", err)
	}
	if msg.MaxOtherAmount.IsNil() || msg.MaxOtherAmount.LTE(sdkmath.ZeroInt()) {
		return ErrInvalidBalance.Wrap("max_other_amount must be positive")
	}
	if msg.MaxBaseAmount.IsNil() || msg.MaxBaseAmount.LTE(sdkmath.ZeroInt()) {
		return ErrInvalidBalance.Wrap("max_base_amount must be positive")
	}
	return nil
}
