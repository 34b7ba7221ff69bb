package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// IAccountService solvency engine interface.
//
// HealthFactor values the deposit side and the borrow side of the given
// positions at now, after accrual, and returns
// risk-adjusted-collateral-value / debt-value. Callers pass hypothetical
// position copies to evaluate an operation before committing it.
type IAccountService interface {
	HealthFactor(ctx context.Context, positions []*Position, now time.Time) (decimal.Decimal, error)
	UserHealthFactor(ctx context.Context, userID string, now time.Time) (decimal.Decimal, error)
}
