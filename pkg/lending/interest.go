package lending

import (
	"time"

	"lending/core"
	"lending/pkg/number"

	"github.com/shopspring/decimal"
)

var (
	// MaxPrecision max precision of amounts and shares
	MaxPrecision int32 = 16
	// SettlePrecision precision of settled underlying amounts
	SettlePrecision int32 = 8
)

// Accrue advances balance from lastUpdated to now with continuous compounding:
// B' = B * e^(rate * Δt), Δt in seconds.
//
// Δt must be non-negative; a clock behind the recorded timestamp fails instead
// of shrinking the balance.
func Accrue(balance, rate decimal.Decimal, lastUpdated, now time.Time) (decimal.Decimal, error) {
	seconds := now.Unix() - lastUpdated.Unix()
	if seconds < 0 {
		return decimal.Zero, core.ErrInvalidTimestamp
	}

	if seconds == 0 || balance.IsZero() || rate.IsZero() {
		return balance, nil
	}

	growth := number.Exp(rate.Mul(decimal.NewFromInt(seconds)))

	return balance.Mul(growth).Truncate(MaxPrecision), nil
}

// AccrueInterest advances the pool's aggregate borrowed total to now.
// Shares are never touched by accrual.
func AccrueInterest(pool *core.Pool, now time.Time) error {
	if pool.LastUpdated.IsZero() {
		pool.LastUpdated = now
		return nil
	}

	accrued, err := Accrue(pool.TotalBorrowed, pool.InterestRate, pool.LastUpdated, now)
	if err != nil {
		return err
	}

	pool.TotalBorrowed = accrued
	pool.LastUpdated = now

	return nil
}

// AccrueDeposit advances the deposit side of the position to now using the
// position's own timestamp.
func AccrueDeposit(pool *core.Pool, position *core.Position, now time.Time) error {
	if position.LastUpdatedDeposit.IsZero() {
		position.LastUpdatedDeposit = now
		return nil
	}

	accrued, err := Accrue(position.DepositedAmount, pool.InterestRate, position.LastUpdatedDeposit, now)
	if err != nil {
		return err
	}

	position.DepositedAmount = accrued
	position.LastUpdatedDeposit = now

	return nil
}

// AccrueBorrow advances the borrow side of the position to now using the
// position's own timestamp.
func AccrueBorrow(pool *core.Pool, position *core.Position, now time.Time) error {
	if position.LastUpdatedBorrow.IsZero() {
		position.LastUpdatedBorrow = now
		return nil
	}

	accrued, err := Accrue(position.BorrowedAmount, pool.InterestRate, position.LastUpdatedBorrow, now)
	if err != nil {
		return err
	}

	position.BorrowedAmount = accrued
	position.LastUpdatedBorrow = now

	return nil
}
