package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/dex/x/dex/types"
)

// msgServer wraps a Keeper to dispatch the module's three messages, the way
// x/dex/keeper/msg_server.go wires the teacher module's handlers.
type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the module's message
// service.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) AddLiquidity(ctx context.Context, msg *types.MsgAddLiquidity) (*types.MsgAddLiquidityResponse, error) {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}
	record, err := m.Keeper.AddLiquidity(ctx, account, msg.OtherCurrency, msg.MaxOtherAmount, msg.MaxBaseAmount)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddLiquidity,
		sdk.NewAttribute(types.AttributeKeyAccount, record.Account),
		sdk.NewAttribute(types.AttributeKeyCurrency, record.Currency.String()),
		sdk.NewAttribute(types.AttributeKeyOtherAmount, record.OtherAmount.String()),
		sdk.NewAttribute(types.AttributeKeyBaseAmount, record.BaseAmount.String()),
		sdk.NewAttribute(types.AttributeKeyShareAmount, record.ShareAmount.String()),
	))

	return &types.MsgAddLiquidityResponse{ShareAmount: record.ShareAmount}, nil
}

func (m msgServer) WithdrawLiquidity(ctx context.Context, msg *types.MsgWithdrawLiquidity) (*types.MsgWithdrawLiquidityResponse, error) {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}
	record, err := m.Keeper.WithdrawLiquidity(ctx, account, msg.Currency, msg.ShareAmount)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawLiquidity,
		sdk.NewAttribute(types.AttributeKeyAccount, record.Account),
		sdk.NewAttribute(types.AttributeKeyCurrency, record.Currency.String()),
		sdk.NewAttribute(types.AttributeKeyOtherAmount, record.OtherAmount.String()),
		sdk.NewAttribute(types.AttributeKeyBaseAmount, record.BaseAmount.String()),
		sdk.NewAttribute(types.AttributeKeyShareAmount, record.ShareAmount.String()),
	))

	return &types.MsgWithdrawLiquidityResponse{OtherAmount: record.OtherAmount, BaseAmount: record.BaseAmount}, nil
}

func (m msgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	account, err := sdk.AccAddressFromBech32(msg.Account)
	if err != nil {
		return nil, err
	}
	record, err := m.Keeper.Swap(ctx, account, msg.SupplyCurrency, msg.SupplyAmount, msg.TargetCurrency, msg.MinTargetAmount)
	if err != nil {
		return nil, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSwap,
		sdk.NewAttribute(types.AttributeKeyAccount, record.Account),
		sdk.NewAttribute(types.AttributeKeySupplyCurrency, record.SupplyCurrency.String()),
		sdk.NewAttribute(types.AttributeKeySupplyAmount, record.SupplyAmount.String()),
		sdk.NewAttribute(types.AttributeKeyTargetCurrency, record.TargetCurrency.String()),
		sdk.NewAttribute(types.AttributeKeyTargetAmount, record.TargetAmount.String()),
	))

	return &types.MsgSwapResponse{TargetAmount: record.TargetAmount}, nil
}
