package ledger

import (
	"context"
	"time"

	"lending/core"
	"lending/pkg/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

var one = decimal.New(1, 0)

type ledgerService struct {
	db             *db.DB
	poolStore      core.IPoolStore
	positionStore  core.IPositionStore
	walletService  core.IWalletService
	priceService   core.IPriceOracleService
	accountService core.IAccountService
}

// New new ledger service
func New(
	db *db.DB,
	poolStore core.IPoolStore,
	positionStore core.IPositionStore,
	walletService core.IWalletService,
	priceSrv core.IPriceOracleService,
	accountSrv core.IAccountService,
) core.ILedgerService {
	return &ledgerService{
		db:             db,
		poolStore:      poolStore,
		positionStore:  positionStore,
		walletService:  walletService,
		priceService:   priceSrv,
		accountService: accountSrv,
	}
}

func (s *ledgerService) Deposit(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("op", "deposit")
	ctx = logger.WithContext(ctx, log)

	amount = amount.Truncate(lending.SettlePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.deposit(ctx, tx, userID, assetID, amount, time.Now())
	})
}

func (s *ledgerService) deposit(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx)

	pool, err := s.requirePool(ctx, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueInterest(pool, now); err != nil {
		return err
	}

	position, created, err := s.findOrNewPosition(ctx, userID, assetID, now)
	if err != nil {
		return err
	}

	if err := lending.AccrueDeposit(pool, position, now); err != nil {
		return err
	}

	shares := lending.ApplyDeposit(pool, position, amount)

	if err := s.walletService.Transfer(ctx, tx, assetID, userID, core.ReserveAccountID(assetID), amount); err != nil {
		return err
	}

	log.Infof("user %s deposited %s %s for %s shares", userID, amount, pool.Symbol, shares)

	return s.commit(ctx, tx, pool, position, created)
}

func (s *ledgerService) Withdraw(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("op", "withdraw")
	ctx = logger.WithContext(ctx, log)

	amount = amount.Truncate(lending.SettlePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.withdraw(ctx, tx, userID, assetID, amount, time.Now())
	})
}

func (s *ledgerService) withdraw(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx)

	pool, err := s.requirePool(ctx, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueInterest(pool, now); err != nil {
		return err
	}

	position, err := s.requirePosition(ctx, userID, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueDeposit(pool, position, now); err != nil {
		return err
	}

	shares, err := lending.ApplyWithdraw(pool, position, amount)
	if err != nil {
		return err
	}

	if err := s.checkHealth(ctx, userID, position, now); err != nil {
		return err
	}

	if err := s.walletService.Transfer(ctx, tx, assetID, core.ReserveAccountID(assetID), userID, amount); err != nil {
		return err
	}

	log.Infof("user %s withdrew %s %s burning %s shares", userID, amount, pool.Symbol, shares)

	return s.commit(ctx, tx, pool, position, false)
}

func (s *ledgerService) Borrow(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("op", "borrow")
	ctx = logger.WithContext(ctx, log)

	amount = amount.Truncate(lending.SettlePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.borrow(ctx, tx, userID, assetID, amount, time.Now())
	})
}

func (s *ledgerService) borrow(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx)

	pool, err := s.requirePool(ctx, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueInterest(pool, now); err != nil {
		return err
	}

	position, created, err := s.findOrNewPosition(ctx, userID, assetID, now)
	if err != nil {
		return err
	}

	if err := lending.AccrueBorrow(pool, position, now); err != nil {
		return err
	}

	shares, err := lending.ApplyBorrow(pool, position, amount)
	if err != nil {
		return err
	}

	if err := s.checkHealth(ctx, userID, position, now); err != nil {
		return err
	}

	if err := s.walletService.Transfer(ctx, tx, assetID, core.ReserveAccountID(assetID), userID, amount); err != nil {
		return err
	}

	log.Infof("user %s borrowed %s %s for %s shares", userID, amount, pool.Symbol, shares)

	return s.commit(ctx, tx, pool, position, created)
}

func (s *ledgerService) Repay(ctx context.Context, userID, assetID string, amount decimal.Decimal) error {
	log := logger.FromContext(ctx).WithField("op", "repay")
	ctx = logger.WithContext(ctx, log)

	amount = amount.Truncate(lending.SettlePrecision)
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	return s.db.Tx(func(tx *db.DB) error {
		return s.repay(ctx, tx, userID, assetID, amount, time.Now())
	})
}

func (s *ledgerService) repay(ctx context.Context, tx *db.DB, userID, assetID string, amount decimal.Decimal, now time.Time) error {
	log := logger.FromContext(ctx)

	pool, err := s.requirePool(ctx, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueInterest(pool, now); err != nil {
		return err
	}

	position, err := s.requirePosition(ctx, userID, assetID)
	if err != nil {
		return err
	}

	if err := lending.AccrueBorrow(pool, position, now); err != nil {
		return err
	}

	shares, err := lending.ApplyRepay(pool, position, amount)
	if err != nil {
		return err
	}

	if err := s.walletService.Transfer(ctx, tx, assetID, userID, core.ReserveAccountID(assetID), amount); err != nil {
		return err
	}

	log.Infof("user %s repaid %s %s burning %s shares", userID, amount, pool.Symbol, shares)

	return s.commit(ctx, tx, pool, position, false)
}
