package lending

import (
	"lending/core"

	"github.com/shopspring/decimal"
)

// LiquidationQuote amounts of one liquidation call before settlement
type LiquidationQuote struct {
	// RepayAmount debt-asset units the liquidator pays into the debt pool
	RepayAmount decimal.Decimal
	// SeizeAmount collateral-asset units paid out of the collateral reserve,
	// bonus included
	SeizeAmount decimal.Decimal
	DebtShares  decimal.Decimal
	SeizeShares decimal.Decimal
}

// QuoteLiquidation computes the two legs of a liquidation against accrued
// balances: the close-factor-bounded repay leg and the bonus-weighted seize
// leg, converted between assets through the oracle prices.
func QuoteLiquidation(
	collateralPool, debtPool *core.Pool,
	collateralPosition, debtPosition *core.Position,
	collateralPrice, debtPrice decimal.Decimal,
) (*LiquidationQuote, error) {
	if !collateralPrice.IsPositive() || !debtPrice.IsPositive() {
		return nil, core.ErrStalePrice
	}

	repayAmount := debtPosition.BorrowedAmount.Mul(debtPool.CloseFactor).Truncate(SettlePrecision)
	if !repayAmount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	debtShares := SharesForAmount(repayAmount, debtPool.TotalBorrowed, debtPool.TotalBorrowedShares)
	if debtShares.GreaterThan(debtPosition.BorrowedShares) {
		debtShares = debtPosition.BorrowedShares
	}

	one := decimal.New(1, 0)
	seizeAmount := repayAmount.Mul(debtPrice).Div(collateralPrice).
		Mul(one.Add(collateralPool.LiquidationBonus)).
		Truncate(SettlePrecision)

	if seizeAmount.GreaterThan(collateralPosition.DepositedAmount) {
		return nil, core.ErrInsufficientFunds
	}

	seizeShares := SharesForAmount(seizeAmount, collateralPool.TotalDeposited, collateralPool.TotalDepositedShares)
	if seizeShares.GreaterThan(collateralPosition.DepositedShares) {
		return nil, core.ErrInsufficientFunds
	}

	return &LiquidationQuote{
		RepayAmount: repayAmount,
		SeizeAmount: seizeAmount,
		DebtShares:  debtShares,
		SeizeShares: seizeShares,
	}, nil
}

// ApplyLiquidation burns both legs of the quote from the pools and the
// borrower's positions together.
func ApplyLiquidation(
	collateralPool, debtPool *core.Pool,
	collateralPosition, debtPosition *core.Position,
	quote *LiquidationQuote,
) {
	debtPool.TotalBorrowed = debtPool.TotalBorrowed.Sub(quote.RepayAmount)
	debtPool.TotalBorrowedShares = debtPool.TotalBorrowedShares.Sub(quote.DebtShares)
	debtPosition.BorrowedAmount = debtPosition.BorrowedAmount.Sub(quote.RepayAmount)
	debtPosition.BorrowedShares = debtPosition.BorrowedShares.Sub(quote.DebtShares)

	collateralPool.TotalDeposited = collateralPool.TotalDeposited.Sub(quote.SeizeAmount)
	collateralPool.TotalDepositedShares = collateralPool.TotalDepositedShares.Sub(quote.SeizeShares)
	collateralPosition.DepositedAmount = collateralPosition.DepositedAmount.Sub(quote.SeizeAmount)
	collateralPosition.DepositedShares = collateralPosition.DepositedShares.Sub(quote.SeizeShares)
}
