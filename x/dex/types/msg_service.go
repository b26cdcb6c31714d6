package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// MsgServer is the module's message service, dispatching the three
// operations of spec.md §4.5 the way a protobuf-generated MsgServer would.
// It is hand-written rather than generated, matching this module's choice
// to stay on legacy-amino sdk.Msg types rather than protobuf codegen.
type MsgServer interface {
	AddLiquidity(context.Context, *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	WithdrawLiquidity(context.Context, *MsgWithdrawLiquidity) (*MsgWithdrawLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
}

// MsgAddLiquidityResponse is the result of an AddLiquidity message.
type MsgAddLiquidityResponse struct {
	ShareAmount sdkmath.Int
}

// MsgWithdrawLiquidityResponse is the result of a WithdrawLiquidity message.
type MsgWithdrawLiquidityResponse struct {
	OtherAmount sdkmath.Int
	BaseAmount  sdkmath.Int
}

// MsgSwapResponse is the result of a Swap message.
type MsgSwapResponse struct {
	TargetAmount sdkmath.Int
}
