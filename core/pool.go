package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Pool per-asset lending pool
type Pool struct {
	ID      uint64 `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID string `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	Symbol  string `sql:"size:20;unique_index:symbol_idx" json:"symbol"`
	// 存入的总量与对应的份额
	TotalDeposited       decimal.Decimal `sql:"type:decimal(32,16)" json:"total_deposited"`
	TotalDepositedShares decimal.Decimal `sql:"type:decimal(32,16)" json:"total_deposited_shares"`
	// 借出的总量与对应的份额
	TotalBorrowed       decimal.Decimal `sql:"type:decimal(32,16)" json:"total_borrowed"`
	TotalBorrowedShares decimal.Decimal `sql:"type:decimal(32,16)" json:"total_borrowed_shares"`
	// 连续复利利率 per second
	InterestRate decimal.Decimal `sql:"type:decimal(20,16)" json:"interest_rate"`
	// 清算阈值 (0, 1], 抵押价值中计为安全背书的比例
	LiquidationThreshold decimal.Decimal `sql:"type:decimal(20,8)" json:"liquidation_threshold"`
	// 清算奖励因子 (0, 1), 一般为0.1
	LiquidationBonus decimal.Decimal `sql:"type:decimal(20,8)" json:"liquidation_bonus"`
	// 单次清算最大可偿还的债务比例
	CloseFactor decimal.Decimal `sql:"type:decimal(20,8)" json:"close_factor"`
	LastUpdated time.Time       `json:"last_updated"`
	Version     int64           `sql:"default:0" json:"version"`
	CreatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// UtilizationRate borrowed over deposited, zero on an empty pool
func (p *Pool) UtilizationRate() decimal.Decimal {
	if p.TotalDeposited.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	return p.TotalBorrowed.Div(p.TotalDeposited).Truncate(16)
}

// Liquidity underlying amount still available to borrow or withdraw
func (p *Pool) Liquidity() decimal.Decimal {
	return p.TotalDeposited.Sub(p.TotalBorrowed)
}

// IPoolStore pool store interface
type IPoolStore interface {
	Save(ctx context.Context, tx *db.DB, pool *Pool) error
	Find(ctx context.Context, assetID string) (*Pool, error)
	FindBySymbol(ctx context.Context, symbol string) (*Pool, error)
	All(ctx context.Context) ([]*Pool, error)
	AllAsMap(ctx context.Context) (map[string]*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}
