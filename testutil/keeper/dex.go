package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/dex/x/dex/keeper"
	"github.com/paw-chain/dex/x/dex/types"
)

// mockBankKeeper is a minimal in-memory ledger standing in for x/bank, the
// same shape testutil/keeper/dex.go's mockBankKeeper takes for the teacher
// module's tests.
type mockBankKeeper struct {
	balances map[string]sdk.Coins
}

func newMockBankKeeper() *mockBankKeeper {
	return &mockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// SetBalance seeds an account's balance for test fixtures.
func (m *mockBankKeeper) SetBalance(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = coins
}

func (m *mockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	fromKey, toKey := fromAddr.String(), toAddr.String()
	if m.balances[fromKey] == nil {
		m.balances[fromKey] = sdk.NewCoins()
	}
	if !m.balances[fromKey].IsAllGTE(amt) {
		return types.ErrTokenNotEnough
	}
	m.balances[fromKey] = m.balances[fromKey].Sub(amt...)
	if m.balances[toKey] == nil {
		m.balances[toKey] = sdk.NewCoins()
	}
	m.balances[toKey] = m.balances[toKey].Add(amt...)
	return nil
}

func (m *mockBankKeeper) SpendableCoins(_ context.Context, addr sdk.AccAddress) sdk.Coins {
	if m.balances[addr.String()] == nil {
		return sdk.NewCoins()
	}
	return m.balances[addr.String()]
}

func (m *mockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	if m.balances[addr.String()] == nil {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

// DexKeeper constructs an in-memory keeper backed by an IAVL store over a
// memdb, the same CommitMultiStore-over-dbm.NewMemDB harness
// testutil/keeper/dex.go builds for the teacher module, with a mock bank
// keeper in place of the real x/bank module.
func DexKeeper(t testing.TB) (keeper.Keeper, sdk.Context, *mockBankKeeper) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := newMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, ctx, bank
}
