package types

// Event types and attribute keys for the dex module, lowercase with
// underscore separators in the style of x/dex/types/events.go in the
// teacher module.
const (
	EventTypeAddLiquidity      = "dex_add_liquidity"
	EventTypeWithdrawLiquidity = "dex_withdraw_liquidity"
	EventTypeSwap              = "dex_swap"
)

const (
	AttributeKeyAccount        = "account"
	AttributeKeyCurrency       = "currency_id"
	AttributeKeyOtherAmount    = "other_amount"
	AttributeKeyBaseAmount     = "base_amount"
	AttributeKeyShareAmount    = "share_amount"
	AttributeKeySupplyCurrency = "supply_currency_id"
	AttributeKeySupplyAmount   = "supply_amount"
	AttributeKeyTargetCurrency = "target_currency_id"
	AttributeKeyTargetAmount   = "target_amount"
)
