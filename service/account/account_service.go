package account

import (
	"context"
	"time"

	"lending/core"
	"lending/pkg/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type accountService struct {
	poolStore     core.IPoolStore
	positionStore core.IPositionStore
	priceService  core.IPriceOracleService
}

// New new account service
func New(
	poolStore core.IPoolStore,
	positionStore core.IPositionStore,
	priceSrv core.IPriceOracleService,
) core.IAccountService {
	return &accountService{
		poolStore:     poolStore,
		positionStore: positionStore,
		priceService:  priceSrv,
	}
}

func (s *accountService) HealthFactor(ctx context.Context, positions []*core.Position, now time.Time) (decimal.Decimal, error) {
	log := logger.FromContext(ctx)

	collateralValue := decimal.Zero
	debtValue := decimal.Zero

	for _, position := range positions {
		pool, e := s.poolStore.Find(ctx, position.AssetID)
		if e != nil {
			return decimal.Zero, core.ErrPoolNotFound
		}

		if position.DepositedAmount.IsPositive() {
			accrued, e := lending.Accrue(position.DepositedAmount, pool.InterestRate, position.LastUpdatedDeposit, now)
			if e != nil {
				return decimal.Zero, core.ErrInvalidTimestamp
			}

			price, _, e := s.priceService.GetPrice(ctx, position.AssetID)
			if e != nil {
				return decimal.Zero, e
			}

			value := accrued.Mul(price).Mul(pool.LiquidationThreshold)
			collateralValue = collateralValue.Add(value)
		}

		if position.BorrowedAmount.IsPositive() {
			accrued, e := lending.Accrue(position.BorrowedAmount, pool.InterestRate, position.LastUpdatedBorrow, now)
			if e != nil {
				return decimal.Zero, core.ErrInvalidTimestamp
			}

			price, _, e := s.priceService.GetPrice(ctx, position.AssetID)
			if e != nil {
				return decimal.Zero, e
			}

			debtValue = debtValue.Add(accrued.Mul(price))
		}
	}

	hf := lending.HealthFactor(collateralValue, debtValue)
	log.Debugln("health factor:", hf)

	return hf, nil
}

func (s *accountService) UserHealthFactor(ctx context.Context, userID string, now time.Time) (decimal.Decimal, error) {
	positions, e := s.positionStore.FindByUser(ctx, userID)
	if e != nil {
		return decimal.Zero, e
	}

	return s.HealthFactor(ctx, positions, now)
}
