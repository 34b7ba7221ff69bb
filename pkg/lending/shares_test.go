package lending

import (
	"testing"

	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

func TestSharesForAmountBootstrap(t *testing.T) {
	shares := SharesForAmount(number.Decimal("100"), decimal.Zero, decimal.Zero)
	if !shares.Equal(number.Decimal("100")) {
		t.Error("empty pool should mint 1:1, got", shares)
	}
}

func TestSharesForAmountProportional(t *testing.T) {
	// pool (1000, 1000), deposit 500 -> 500 shares
	shares := SharesForAmount(number.Decimal("500"), number.Decimal("1000"), number.Decimal("1000"))
	if !shares.Equal(number.Decimal("500")) {
		t.Error("expected 500 shares, got", shares)
	}

	// share price 2: pool (2000, 1000), deposit 500 -> 250 shares
	shares = SharesForAmount(number.Decimal("500"), number.Decimal("2000"), number.Decimal("1000"))
	if !shares.Equal(number.Decimal("250")) {
		t.Error("expected 250 shares, got", shares)
	}
}

func TestSharesForAmountNoTruncation(t *testing.T) {
	// small repay against a large pool must not round to zero
	shares := SharesForAmount(number.Decimal("50"), number.Decimal("1000"), number.Decimal("1000"))
	if !shares.Equal(number.Decimal("50")) {
		t.Error("expected 50 shares, got", shares)
	}

	shares = SharesForAmount(number.Decimal("0.00000001"), number.Decimal("1000000"), number.Decimal("1000000"))
	if shares.IsZero() {
		t.Error("tiny amount truncated to zero shares")
	}
}

func TestAmountForSharesRoundTrip(t *testing.T) {
	totalAmount := number.Decimal("1357.2468")
	totalShares := number.Decimal("1200")

	shares := SharesForAmount(number.Decimal("100"), totalAmount, totalShares)
	back := AmountForShares(shares, totalAmount.Add(number.Decimal("100")), totalShares.Add(shares))

	diff := back.Sub(number.Decimal("100")).Abs()
	if diff.GreaterThan(number.Decimal("0.00000001")) {
		t.Error("round trip drifted:", back)
	}
}

func TestHealthFactor(t *testing.T) {
	// collateral 1000 * threshold 0.8 = 800 against debt 900 -> ~0.889
	hf := HealthFactor(number.Decimal("800"), number.Decimal("900"))
	if hf.GreaterThanOrEqual(decimal.New(1, 0)) {
		t.Error("position should be undercollateralized, hf =", hf)
	}

	if hf.LessThan(number.Decimal("0.888")) || hf.GreaterThan(number.Decimal("0.889")) {
		t.Error("unexpected health factor:", hf)
	}
}

func TestHealthFactorNoDebt(t *testing.T) {
	hf := HealthFactor(number.Decimal("800"), decimal.Zero)
	if !hf.Equal(MaxHealthFactor) {
		t.Error("no debt should report max health, got", hf)
	}
}
