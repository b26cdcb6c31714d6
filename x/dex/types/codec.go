package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the module's concrete message types on the legacy
// amino codec, the way x/dex/types/codec.go registers the teacher module's
// messages. There is no generated protobuf here (spec.md §6: no wire
// protocol beyond the module's own store) so messages stay legacy-amino,
// matching the teacher's MsgAddLiquidity/MsgSwap style rather than its
// protobuf-generated pool messages.
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddLiquidity{}, "dex/MsgAddLiquidity", nil)
	cdc.RegisterConcrete(&MsgWithdrawLiquidity{}, "dex/MsgWithdrawLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "dex/MsgSwap", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAddLiquidity{},
		&MsgWithdrawLiquidity{},
		&MsgSwap{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()
}
