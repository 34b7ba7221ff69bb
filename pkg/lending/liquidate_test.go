package lending

import (
	"testing"

	"lending/core"
	"lending/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collateral value 1000 at threshold 0.8 against debt value 900:
// hf = 800/900 < 1, close factor 0.5 repays 450, bonus 0.1 seizes 495.
func TestQuoteLiquidationScenario(t *testing.T) {
	collateralPool := &core.Pool{
		TotalDeposited:       number.Decimal("10000"),
		TotalDepositedShares: number.Decimal("10000"),
		LiquidationThreshold: number.Decimal("0.8"),
		LiquidationBonus:     number.Decimal("0.1"),
	}
	debtPool := &core.Pool{
		TotalBorrowed:       number.Decimal("10000"),
		TotalBorrowedShares: number.Decimal("10000"),
		CloseFactor:         number.Decimal("0.5"),
	}

	collateralPosition := &core.Position{
		DepositedAmount: number.Decimal("1000"),
		DepositedShares: number.Decimal("1000"),
	}
	debtPosition := &core.Position{
		BorrowedAmount: number.Decimal("900"),
		BorrowedShares: number.Decimal("900"),
	}

	one := number.Decimal("1")
	hf := HealthFactor(
		collateralPosition.DepositedAmount.Mul(one).Mul(collateralPool.LiquidationThreshold),
		debtPosition.BorrowedAmount.Mul(one),
	)
	require.True(t, hf.LessThan(one), "position must be liquidatable, hf = %s", hf)

	quote, err := QuoteLiquidation(collateralPool, debtPool, collateralPosition, debtPosition, one, one)
	require.NoError(t, err)

	assert.True(t, quote.RepayAmount.Equal(number.Decimal("450")), "repay = %s", quote.RepayAmount)
	assert.True(t, quote.SeizeAmount.Equal(number.Decimal("495")), "seize = %s", quote.SeizeAmount)

	ApplyLiquidation(collateralPool, debtPool, collateralPosition, debtPosition, quote)

	assert.True(t, debtPosition.BorrowedAmount.Equal(number.Decimal("450")))
	assert.True(t, debtPosition.BorrowedShares.Equal(number.Decimal("450")))
	assert.True(t, collateralPosition.DepositedAmount.Equal(number.Decimal("505")))
	assert.True(t, collateralPosition.DepositedShares.Equal(number.Decimal("505")))
	assert.True(t, debtPool.TotalBorrowed.Equal(number.Decimal("9550")))
	assert.True(t, collateralPool.TotalDeposited.Equal(number.Decimal("9505")))
}

func TestQuoteLiquidationPriceConversion(t *testing.T) {
	collateralPool := &core.Pool{
		TotalDeposited:       number.Decimal("1000"),
		TotalDepositedShares: number.Decimal("1000"),
		LiquidationBonus:     number.Decimal("0.1"),
	}
	debtPool := &core.Pool{
		TotalBorrowed:       number.Decimal("1000"),
		TotalBorrowedShares: number.Decimal("1000"),
		CloseFactor:         number.Decimal("0.5"),
	}

	collateralPosition := &core.Position{
		DepositedAmount: number.Decimal("100"),
		DepositedShares: number.Decimal("100"),
	}
	debtPosition := &core.Position{
		BorrowedAmount: number.Decimal("400"),
		BorrowedShares: number.Decimal("400"),
	}

	// collateral at 20, debt at 2: repay 200 debt units = 400 value,
	// seize = 400/20 * 1.1 = 22 collateral units
	quote, err := QuoteLiquidation(collateralPool, debtPool, collateralPosition, debtPosition,
		number.Decimal("20"), number.Decimal("2"))
	require.NoError(t, err)

	assert.True(t, quote.RepayAmount.Equal(number.Decimal("200")), "repay = %s", quote.RepayAmount)
	assert.True(t, quote.SeizeAmount.Equal(number.Decimal("22")), "seize = %s", quote.SeizeAmount)
}

func TestQuoteLiquidationReserveShort(t *testing.T) {
	collateralPool := &core.Pool{
		TotalDeposited:       number.Decimal("1000"),
		TotalDepositedShares: number.Decimal("1000"),
		LiquidationBonus:     number.Decimal("0.1"),
	}
	debtPool := &core.Pool{
		TotalBorrowed:       number.Decimal("1000"),
		TotalBorrowedShares: number.Decimal("1000"),
		CloseFactor:         number.Decimal("0.9"),
	}

	// borrower's collateral cannot cover the seize leg
	collateralPosition := &core.Position{
		DepositedAmount: number.Decimal("10"),
		DepositedShares: number.Decimal("10"),
	}
	debtPosition := &core.Position{
		BorrowedAmount: number.Decimal("900"),
		BorrowedShares: number.Decimal("900"),
	}

	one := number.Decimal("1")
	_, err := QuoteLiquidation(collateralPool, debtPool, collateralPosition, debtPosition, one, one)
	assert.Equal(t, core.ErrInsufficientFunds, err)
}

func TestQuoteLiquidationBadPrice(t *testing.T) {
	pool := &core.Pool{CloseFactor: number.Decimal("0.5")}
	position := &core.Position{BorrowedAmount: number.Decimal("100")}

	_, err := QuoteLiquidation(pool, pool, position, position, number.Decimal("0"), number.Decimal("1"))
	assert.Equal(t, core.ErrStalePrice, err)
}
