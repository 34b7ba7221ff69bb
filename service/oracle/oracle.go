package oracle

import (
	"context"
	"time"

	"lending/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/logger"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type priceOracleService struct {
	priceStore core.IPriceStore
	maxAge     time.Duration
	cache      gcache.Cache
}

// New new price oracle service
func New(priceStore core.IPriceStore, maxAge time.Duration) core.IPriceOracleService {
	return &priceOracleService{
		priceStore: priceStore,
		maxAge:     maxAge,
		cache:      gcache.New(64).LRU().Build(),
	}
}

func (s *priceOracleService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error) {
	price, err := s.load(ctx, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return decimal.Zero, time.Time{}, core.ErrStalePrice
		}

		return decimal.Zero, time.Time{}, err
	}

	if time.Since(price.Time) > s.maxAge {
		logger.FromContext(ctx).WithField("asset", assetID).Debugln("stale price, posted at", price.Time)
		return decimal.Zero, time.Time{}, core.ErrStalePrice
	}

	return price.Price, price.Time, nil
}

func (s *priceOracleService) load(ctx context.Context, assetID string) (*core.Price, error) {
	if v, err := s.cache.Get(assetID); err == nil {
		if price, ok := v.(*core.Price); ok {
			return price, nil
		}
	}

	price, err := s.priceStore.Find(ctx, assetID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.SetWithExpire(assetID, price, s.cacheTTL())

	return price, nil
}

func (s *priceOracleService) cacheTTL() time.Duration {
	ttl := s.maxAge / 4
	if ttl > 5*time.Second {
		ttl = 5 * time.Second
	}

	if ttl <= 0 {
		ttl = time.Second
	}

	return ttl
}
