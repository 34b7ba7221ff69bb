package lending

import (
	"github.com/shopspring/decimal"
)

// MaxHealthFactor health factor reported for a position with no debt
var MaxHealthFactor = decimal.NewFromInt(1000000)

// SharesForAmount converts an underlying amount to pool shares.
//
// shares = amount * total_shares / total_amount, multiplication first so small
// amounts against a large pool never truncate to zero. An empty pool mints 1:1.
func SharesForAmount(amount, totalAmount, totalShares decimal.Decimal) decimal.Decimal {
	if totalShares.IsZero() || totalAmount.IsZero() {
		return amount
	}

	return amount.Mul(totalShares).Div(totalAmount).Truncate(MaxPrecision)
}

// AmountForShares converts pool shares back to an underlying amount.
func AmountForShares(shares, totalAmount, totalShares decimal.Decimal) decimal.Decimal {
	if totalShares.IsZero() {
		return decimal.Zero
	}

	return shares.Mul(totalAmount).Div(totalShares).Truncate(MaxPrecision)
}

// HealthFactor risk-adjusted collateral value over debt value.
//
// The collateral value passed in is already weighted by each pool's
// liquidation threshold. Zero debt yields MaxHealthFactor.
func HealthFactor(collateralValue, debtValue decimal.Decimal) decimal.Decimal {
	if debtValue.LessThanOrEqual(decimal.Zero) {
		return MaxHealthFactor
	}

	return collateralValue.Div(debtValue).Truncate(MaxPrecision)
}
