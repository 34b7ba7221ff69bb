package ledger

import (
	"context"
	"time"

	"lending/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

func (s *ledgerService) requirePool(ctx context.Context, assetID string) (*core.Pool, error) {
	pool, err := s.poolStore.Find(ctx, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrPoolNotFound
		}

		return nil, err
	}

	return pool, nil
}

func (s *ledgerService) requirePosition(ctx context.Context, userID, assetID string) (*core.Position, error) {
	position, err := s.positionStore.Find(ctx, userID, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrPositionNotFound
		}

		return nil, err
	}

	return position, nil
}

func (s *ledgerService) findOrNewPosition(ctx context.Context, userID, assetID string, now time.Time) (*core.Position, bool, error) {
	position, err := s.positionStore.Find(ctx, userID, assetID)
	if err == nil {
		return position, false, nil
	}

	if !gorm.IsRecordNotFoundError(err) {
		return nil, false, err
	}

	position = &core.Position{
		UserID:             userID,
		AssetID:            assetID,
		LastUpdatedDeposit: now,
		LastUpdatedBorrow:  now,
	}

	return position, true, nil
}

// checkHealth evaluates the user's health factor with the mutated position
// substituted in, before anything is committed
func (s *ledgerService) checkHealth(ctx context.Context, userID string, mutated *core.Position, now time.Time) error {
	positions, err := s.positionStore.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	positions = replacePosition(positions, mutated)

	hf, err := s.accountService.HealthFactor(ctx, positions, now)
	if err != nil {
		return err
	}

	if hf.LessThan(one) {
		return core.ErrOverBorrowableAmount
	}

	return nil
}

func (s *ledgerService) commit(ctx context.Context, tx *db.DB, pool *core.Pool, position *core.Position, created bool) error {
	if err := s.poolStore.Update(ctx, tx, pool); err != nil {
		return err
	}

	if created {
		return s.positionStore.Save(ctx, tx, position)
	}

	return s.positionStore.Update(ctx, tx, position)
}

func replacePosition(positions []*core.Position, mutated *core.Position) []*core.Position {
	replaced := false
	out := make([]*core.Position, 0, len(positions)+1)
	for _, p := range positions {
		if p.UserID == mutated.UserID && p.AssetID == mutated.AssetID {
			out = append(out, mutated)
			replaced = true
			continue
		}

		out = append(out, p)
	}

	if !replaced {
		out = append(out, mutated)
	}

	return out
}
