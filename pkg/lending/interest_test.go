package lending

import (
	"testing"
	"time"

	"lending/core"
	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

func TestAccrueZeroElapsed(t *testing.T) {
	now := time.Now()
	balance := number.Decimal("123.45")

	got, err := Accrue(balance, number.Decimal("0.0000001"), now, now)
	if err != nil {
		t.Fatal(err)
	}

	if !got.Equal(balance) {
		t.Error("accrual with no elapsed time should be a no-op, got", got)
	}
}

func TestAccrueNegativeElapsed(t *testing.T) {
	now := time.Now()

	_, err := Accrue(number.Decimal("100"), number.Decimal("0.01"), now.Add(time.Minute), now)
	if err != core.ErrInvalidTimestamp {
		t.Error("expected ErrInvalidTimestamp, got", err)
	}
}

func TestAccrueZeroRate(t *testing.T) {
	now := time.Now()
	balance := number.Decimal("200")

	got, err := Accrue(balance, decimal.Zero, now.Add(-time.Hour), now)
	if err != nil {
		t.Fatal(err)
	}

	if !got.Equal(balance) {
		t.Error("zero rate should not grow the balance, got", got)
	}
}

func TestAccrueMonotone(t *testing.T) {
	rate := number.Decimal("0.0000001")
	balance := number.Decimal("1000")
	start := time.Unix(1700000000, 0)

	prev := balance
	for _, elapsed := range []time.Duration{time.Second, time.Minute, time.Hour, 24 * time.Hour} {
		got, err := Accrue(balance, rate, start, start.Add(elapsed))
		if err != nil {
			t.Fatal(err)
		}

		if got.LessThan(prev) {
			t.Errorf("accrued balance decreased at %s: %s < %s", elapsed, got, prev)
		}
		prev = got
	}
}

func TestAccrueContinuousCompounding(t *testing.T) {
	// 1000 * e^(0.1) ≈ 1105.17
	start := time.Unix(1700000000, 0)
	got, err := Accrue(number.Decimal("1000"), number.Decimal("0.001"), start, start.Add(100*time.Second))
	if err != nil {
		t.Fatal(err)
	}

	if got.LessThan(number.Decimal("1105.17")) || got.GreaterThan(number.Decimal("1105.18")) {
		t.Error("unexpected accrued balance:", got)
	}
}

func TestAccrueInterestIdempotent(t *testing.T) {
	now := time.Now()
	pool := &core.Pool{
		TotalBorrowed:       number.Decimal("1000"),
		TotalBorrowedShares: number.Decimal("1000"),
		InterestRate:        number.Decimal("0.0000001"),
		LastUpdated:         now.Add(-time.Hour),
	}

	if err := AccrueInterest(pool, now); err != nil {
		t.Fatal(err)
	}

	first := pool.TotalBorrowed
	if !first.GreaterThan(number.Decimal("1000")) {
		t.Error("interest should have accrued, got", first)
	}

	// second call with no elapsed time is a no-op
	if err := AccrueInterest(pool, now); err != nil {
		t.Fatal(err)
	}

	if !pool.TotalBorrowed.Equal(first) {
		t.Error("accrual should be idempotent, got", pool.TotalBorrowed)
	}

	if !pool.TotalBorrowedShares.Equal(number.Decimal("1000")) {
		t.Error("accrual must not touch shares")
	}
}
