package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrInvalidAmount invalid amount
	ErrInvalidAmount ErrorCode = 100001
	// ErrPoolNotFound no pool listed for the asset
	ErrPoolNotFound ErrorCode = 100002
	// ErrPositionNotFound no position for the user and asset
	ErrPositionNotFound ErrorCode = 100003

	// ErrInsufficientFunds withdrawal or seize exceeds available shares or reserve
	ErrInsufficientFunds ErrorCode = 100100
	// ErrOverBorrowableAmount post-mutation health factor would drop below 1.0
	ErrOverBorrowableAmount ErrorCode = 100101
	// ErrOverRepay repay amount exceeds accrued borrowed amount
	ErrOverRepay ErrorCode = 100102
	// ErrNotUnderCollaterized liquidation attempted on a healthy position
	ErrNotUnderCollaterized ErrorCode = 100103
	// ErrInvalidTimestamp negative elapsed time into accrual
	ErrInvalidTimestamp ErrorCode = 100104
	// ErrStalePrice oracle price missing or older than the max age
	ErrStalePrice ErrorCode = 100105
)

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}
