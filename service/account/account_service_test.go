package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"lending/core"
	"lending/pkg/lending"
	"lending/pkg/number"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoolStore struct {
	pools map[string]*core.Pool
}

func (s *fakePoolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	s.pools[pool.AssetID] = pool
	return nil
}

func (s *fakePoolStore) Find(ctx context.Context, assetID string) (*core.Pool, error) {
	pool, ok := s.pools[assetID]
	if !ok {
		return nil, errors.New("record not found")
	}
	return pool, nil
}

func (s *fakePoolStore) FindBySymbol(ctx context.Context, symbol string) (*core.Pool, error) {
	for _, p := range s.pools {
		if p.Symbol == symbol {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *fakePoolStore) All(ctx context.Context) ([]*core.Pool, error) {
	var pools []*core.Pool
	for _, p := range s.pools {
		pools = append(pools, p)
	}
	return pools, nil
}

func (s *fakePoolStore) AllAsMap(ctx context.Context) (map[string]*core.Pool, error) {
	return s.pools, nil
}

func (s *fakePoolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	s.pools[pool.AssetID] = pool
	return nil
}

type fakePositionStore struct {
	positions []*core.Position
}

func (s *fakePositionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	s.positions = append(s.positions, position)
	return nil
}

func (s *fakePositionStore) Find(ctx context.Context, userID, assetID string) (*core.Position, error) {
	for _, p := range s.positions {
		if p.UserID == userID && p.AssetID == assetID {
			return p, nil
		}
	}
	return nil, errors.New("record not found")
}

func (s *fakePositionStore) FindByUser(ctx context.Context, userID string) ([]*core.Position, error) {
	var out []*core.Position
	for _, p := range s.positions {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePositionStore) All(ctx context.Context) ([]*core.Position, error) {
	return s.positions, nil
}

func (s *fakePositionStore) Users(ctx context.Context) ([]string, error) {
	var users []string
	for _, p := range s.positions {
		users = append(users, p.UserID)
	}
	return users, nil
}

func (s *fakePositionStore) Update(ctx context.Context, tx *db.DB, position *core.Position) error {
	return nil
}

type fakeOracle struct {
	prices map[string]decimal.Decimal
	err    error
}

func (s *fakeOracle) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, time.Time, error) {
	if s.err != nil {
		return decimal.Zero, time.Time{}, s.err
	}

	price, ok := s.prices[assetID]
	if !ok {
		return decimal.Zero, time.Time{}, core.ErrStalePrice
	}

	return price, time.Now(), nil
}

func testPools() *fakePoolStore {
	return &fakePoolStore{pools: map[string]*core.Pool{
		"btc": {
			AssetID:              "btc",
			Symbol:               "BTC",
			LiquidationThreshold: number.Decimal("0.8"),
		},
		"usd": {
			AssetID:              "usd",
			Symbol:               "USD",
			LiquidationThreshold: number.Decimal("0.9"),
		},
	}}
}

func TestHealthFactorUnderCollaterized(t *testing.T) {
	srv := New(testPools(), &fakePositionStore{}, &fakeOracle{prices: map[string]decimal.Decimal{
		"btc": number.Decimal("1"),
		"usd": number.Decimal("1"),
	}})

	positions := []*core.Position{
		{UserID: "u1", AssetID: "btc", DepositedAmount: number.Decimal("1000")},
		{UserID: "u1", AssetID: "usd", BorrowedAmount: number.Decimal("900")},
	}

	hf, err := srv.HealthFactor(context.Background(), positions, time.Now())
	require.NoError(t, err)

	// 1000 * 0.8 / 900 ≈ 0.889
	assert.True(t, hf.LessThan(number.Decimal("1")), "hf = %s", hf)
	assert.True(t, hf.GreaterThan(number.Decimal("0.88")), "hf = %s", hf)
}

func TestHealthFactorHealthy(t *testing.T) {
	srv := New(testPools(), &fakePositionStore{}, &fakeOracle{prices: map[string]decimal.Decimal{
		"btc": number.Decimal("2"),
		"usd": number.Decimal("1"),
	}})

	positions := []*core.Position{
		{UserID: "u1", AssetID: "btc", DepositedAmount: number.Decimal("1000")},
		{UserID: "u1", AssetID: "usd", BorrowedAmount: number.Decimal("900")},
	}

	hf, err := srv.HealthFactor(context.Background(), positions, time.Now())
	require.NoError(t, err)

	// 2000 * 0.8 / 900 ≈ 1.78
	assert.True(t, hf.GreaterThanOrEqual(number.Decimal("1")), "hf = %s", hf)
}

func TestHealthFactorNoDebt(t *testing.T) {
	srv := New(testPools(), &fakePositionStore{}, &fakeOracle{prices: map[string]decimal.Decimal{
		"btc": number.Decimal("1"),
	}})

	positions := []*core.Position{
		{UserID: "u1", AssetID: "btc", DepositedAmount: number.Decimal("1000")},
	}

	hf, err := srv.HealthFactor(context.Background(), positions, time.Now())
	require.NoError(t, err)
	assert.True(t, hf.Equal(lending.MaxHealthFactor))
}

func TestHealthFactorStalePrice(t *testing.T) {
	srv := New(testPools(), &fakePositionStore{}, &fakeOracle{err: core.ErrStalePrice})

	positions := []*core.Position{
		{UserID: "u1", AssetID: "btc", DepositedAmount: number.Decimal("1000")},
	}

	_, err := srv.HealthFactor(context.Background(), positions, time.Now())
	assert.Equal(t, core.ErrStalePrice, err)
}

func TestUserHealthFactor(t *testing.T) {
	positions := &fakePositionStore{positions: []*core.Position{
		{UserID: "u1", AssetID: "btc", DepositedAmount: number.Decimal("1000")},
		{UserID: "u1", AssetID: "usd", BorrowedAmount: number.Decimal("100")},
		{UserID: "u2", AssetID: "usd", BorrowedAmount: number.Decimal("90000")},
	}}

	srv := New(testPools(), positions, &fakeOracle{prices: map[string]decimal.Decimal{
		"btc": number.Decimal("1"),
		"usd": number.Decimal("1"),
	}})

	hf, err := srv.UserHealthFactor(context.Background(), "u1", time.Now())
	require.NoError(t, err)

	// u2's debt must not leak into u1's account
	assert.True(t, hf.GreaterThan(number.Decimal("1")), "hf = %s", hf)
}
