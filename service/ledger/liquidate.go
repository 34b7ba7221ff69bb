package ledger

import (
	"context"
	"fmt"
	"time"

	"lending/core"
	"lending/pkg/id"
	"lending/pkg/lending"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

func (s *ledgerService) Liquidate(ctx context.Context, liquidatorID, borrowerID, collateralAssetID, debtAssetID string) (*core.Liquidation, error) {
	log := logger.FromContext(ctx).WithField("op", "liquidate")
	ctx = logger.WithContext(ctx, log)

	if collateralAssetID == debtAssetID {
		return nil, core.ErrInvalidAmount
	}

	var result *core.Liquidation

	err := s.db.Tx(func(tx *db.DB) error {
		var err error
		result, err = s.liquidate(ctx, tx, liquidatorID, borrowerID, collateralAssetID, debtAssetID, time.Now())
		return err
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *ledgerService) liquidate(ctx context.Context, tx *db.DB, liquidatorID, borrowerID, collateralAssetID, debtAssetID string, now time.Time) (*core.Liquidation, error) {
	log := logger.FromContext(ctx)

	collateralPool, err := s.requirePool(ctx, collateralAssetID)
	if err != nil {
		return nil, err
	}

	debtPool, err := s.requirePool(ctx, debtAssetID)
	if err != nil {
		return nil, err
	}

	if err := lending.AccrueInterest(collateralPool, now); err != nil {
		return nil, err
	}

	if err := lending.AccrueInterest(debtPool, now); err != nil {
		return nil, err
	}

	collateralPosition, err := s.requirePosition(ctx, borrowerID, collateralAssetID)
	if err != nil {
		return nil, err
	}

	debtPosition, err := s.requirePosition(ctx, borrowerID, debtAssetID)
	if err != nil {
		return nil, err
	}

	if err := lending.AccrueDeposit(collateralPool, collateralPosition, now); err != nil {
		return nil, err
	}

	if err := lending.AccrueBorrow(debtPool, debtPosition, now); err != nil {
		return nil, err
	}

	positions, err := s.positionStore.FindByUser(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	positions = replacePosition(positions, collateralPosition)
	positions = replacePosition(positions, debtPosition)

	hf, err := s.accountService.HealthFactor(ctx, positions, now)
	if err != nil {
		return nil, err
	}

	if hf.GreaterThanOrEqual(one) {
		return nil, core.ErrNotUnderCollaterized
	}

	collateralPrice, _, err := s.priceService.GetPrice(ctx, collateralAssetID)
	if err != nil {
		return nil, err
	}

	debtPrice, _, err := s.priceService.GetPrice(ctx, debtAssetID)
	if err != nil {
		return nil, err
	}

	quote, err := lending.QuoteLiquidation(collateralPool, debtPool, collateralPosition, debtPosition, collateralPrice, debtPrice)
	if err != nil {
		return nil, err
	}

	lending.ApplyLiquidation(collateralPool, debtPool, collateralPosition, debtPosition, quote)

	// debt leg: the liquidator repays into the debt pool reserve
	if err := s.walletService.Transfer(ctx, tx, debtAssetID, liquidatorID, core.ReserveAccountID(debtAssetID), quote.RepayAmount); err != nil {
		return nil, err
	}

	// collateral leg: seized deposit, bonus included, paid out of the
	// collateral pool reserve
	if err := s.walletService.Transfer(ctx, tx, collateralAssetID, core.ReserveAccountID(collateralAssetID), liquidatorID, quote.SeizeAmount); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, tx, debtPool, debtPosition, false); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, tx, collateralPool, collateralPosition, false); err != nil {
		return nil, err
	}

	log.Infof("liquidator %s repaid %s of %s and seized %s of %s from %s (hf %s)",
		liquidatorID, quote.RepayAmount, debtPool.Symbol, quote.SeizeAmount, collateralPool.Symbol, borrowerID, hf)

	// deterministic per second, repeated submissions settle under the same trace
	traceID := id.UUIDFromString(fmt.Sprintf("liquidation-%s-%s-%s-%d", borrowerID, collateralAssetID, debtAssetID, now.Unix()))

	return &core.Liquidation{
		TraceID:           traceID,
		BorrowerID:        borrowerID,
		LiquidatorID:      liquidatorID,
		CollateralAssetID: collateralAssetID,
		DebtAssetID:       debtAssetID,
		HealthFactor:      hf,
		RepayAmount:       quote.RepayAmount,
		SeizeAmount:       quote.SeizeAmount,
	}, nil
}
