package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/dex/x/dex/types"
)

func validBech32(t *testing.T) string {
	t.Helper()
	return sdk.AccAddress([]byte("valid_test_address_")).String()
}

func TestMsgAddLiquidityValidateBasic(t *testing.T) {
	addr := validBech32(t)

	msg := types.NewMsgAddLiquidity(addr, types.CurrencyID(1), sdkmath.NewInt(100), sdkmath.NewInt(100))
	require.NoError(t, msg.ValidateBasic())

	msg.MaxOtherAmount = sdkmath.ZeroInt()
	require.Error(t, msg.ValidateBasic())
}

func TestMsgWithdrawLiquidityValidateBasic(t *testing.T) {
	addr := validBech32(t)

	msg := types.NewMsgWithdrawLiquidity(addr, types.CurrencyID(1), sdkmath.NewInt(10))
	require.NoError(t, msg.ValidateBasic())

	msg.ShareAmount = sdkmath.NewInt(-1)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrShareNotEnough)
}

func TestMsgSwapValidateBasicRejectsSelfSwap(t *testing.T) {
	addr := validBech32(t)

	msg := types.NewMsgSwap(addr, types.CurrencyID(1), sdkmath.NewInt(10), types.CurrencyID(1), sdkmath.ZeroInt())
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrCanNotSwapItself)
}

func TestMsgSwapValidateBasicAccepts(t *testing.T) {
	addr := validBech32(t)

	msg := types.NewMsgSwap(addr, types.CurrencyID(1), sdkmath.NewInt(10), types.CurrencyID(2), sdkmath.ZeroInt())
	require.NoError(t, msg.ValidateBasic())
}
