package views

import (
	"lending/core"

	"github.com/shopspring/decimal"
)

// Pool pool view
type Pool struct {
	core.Pool
	UtilizationRate decimal.Decimal `json:"utilization_rate"`
	Liquidity       decimal.Decimal `json:"liquidity"`
}

// NewPool build a pool view with the derived rates filled in
func NewPool(pool *core.Pool) *Pool {
	return &Pool{
		Pool:            *pool,
		UtilizationRate: pool.UtilizationRate(),
		Liquidity:       pool.Liquidity(),
	}
}
