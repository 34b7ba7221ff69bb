package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// Liquidation settlement summary of one liquidation call
type Liquidation struct {
	TraceID           string          `json:"trace_id"`
	BorrowerID        string          `json:"borrower_id"`
	LiquidatorID      string          `json:"liquidator_id"`
	CollateralAssetID string          `json:"collateral_asset_id"`
	DebtAssetID       string          `json:"debt_asset_id"`
	HealthFactor      decimal.Decimal `json:"health_factor"`
	RepayAmount       decimal.Decimal `json:"repay_amount"`
	SeizeAmount       decimal.Decimal `json:"seize_amount"`
}

// ILedgerService share ledger operations.
//
// Every operation runs as one atomic transaction: interest accrual on the
// touched pools and position sides first, then the share mutation, then the
// settlement transfer. Any error aborts the whole operation.
type ILedgerService interface {
	Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Repay(ctx context.Context, userID, assetID string, amount decimal.Decimal) error
	Liquidate(ctx context.Context, liquidatorID, borrowerID, collateralAssetID, debtAssetID string) (*Liquidation, error)
}
