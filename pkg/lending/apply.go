package lending

import (
	"lending/core"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ApplyDeposit mints shares for the deposit and credits pool and position
// together. Returns the minted shares.
func ApplyDeposit(pool *core.Pool, position *core.Position, amount decimal.Decimal) decimal.Decimal {
	shares := SharesForAmount(amount, pool.TotalDeposited, pool.TotalDepositedShares)

	pool.TotalDeposited = pool.TotalDeposited.Add(amount)
	pool.TotalDepositedShares = pool.TotalDepositedShares.Add(shares)
	position.DepositedAmount = position.DepositedAmount.Add(amount)
	position.DepositedShares = position.DepositedShares.Add(shares)

	return shares
}

// ApplyWithdraw burns shares for the withdrawal and debits pool and position
// together. The subtraction is checked: the position must hold enough amount
// and shares, and the pool must hold enough un-lent liquidity.
func ApplyWithdraw(pool *core.Pool, position *core.Position, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(position.DepositedAmount) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	if amount.GreaterThan(pool.Liquidity()) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	shares := SharesForAmount(amount, pool.TotalDeposited, pool.TotalDepositedShares)
	if amount.Equal(position.DepositedAmount) {
		// full exit burns all shares so no dust survives rounding
		shares = position.DepositedShares
	}

	if shares.GreaterThan(position.DepositedShares) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	pool.TotalDeposited = pool.TotalDeposited.Sub(amount)
	pool.TotalDepositedShares = pool.TotalDepositedShares.Sub(shares)
	position.DepositedAmount = position.DepositedAmount.Sub(amount)
	position.DepositedShares = position.DepositedShares.Sub(shares)

	return shares, nil
}

// ApplyBorrow mints borrow shares and raises the pool's borrowed totals. The
// pool cannot lend more than it holds.
func ApplyBorrow(pool *core.Pool, position *core.Position, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(pool.Liquidity()) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	shares := SharesForAmount(amount, pool.TotalBorrowed, pool.TotalBorrowedShares)

	pool.TotalBorrowed = pool.TotalBorrowed.Add(amount)
	pool.TotalBorrowedShares = pool.TotalBorrowedShares.Add(shares)
	position.BorrowedAmount = position.BorrowedAmount.Add(amount)
	position.BorrowedShares = position.BorrowedShares.Add(shares)

	return shares, nil
}

// ApplyRepay burns borrow shares for the repayment. Repaying more than the
// accrued borrowed amount fails with ErrOverRepay.
func ApplyRepay(pool *core.Pool, position *core.Position, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.GreaterThan(position.BorrowedAmount) {
		return decimal.Zero, core.ErrOverRepay
	}

	shares := SharesForAmount(amount, pool.TotalBorrowed, pool.TotalBorrowedShares)
	if amount.Equal(position.BorrowedAmount) {
		shares = position.BorrowedShares
	}

	if shares.GreaterThan(position.BorrowedShares) {
		shares = position.BorrowedShares
	}

	pool.TotalBorrowed = pool.TotalBorrowed.Sub(amount)
	pool.TotalBorrowedShares = pool.TotalBorrowedShares.Sub(shares)
	position.BorrowedAmount = position.BorrowedAmount.Sub(amount)
	position.BorrowedShares = position.BorrowedShares.Sub(shares)

	if pool.TotalBorrowed.IsNegative() || pool.TotalBorrowedShares.IsNegative() {
		logrus.WithField("asset", pool.AssetID).
			Debugf("pool borrowed totals drifted negative (%s amount, %s shares), clamped to zero",
				pool.TotalBorrowed, pool.TotalBorrowedShares)
	}
	if pool.TotalBorrowed.IsNegative() {
		pool.TotalBorrowed = decimal.Zero
	}
	if pool.TotalBorrowedShares.IsNegative() {
		pool.TotalBorrowedShares = decimal.Zero
	}

	return shares, nil
}
