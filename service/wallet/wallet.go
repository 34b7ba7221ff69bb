package wallet

import (
	"context"

	"lending/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type walletService struct {
	walletStore core.IWalletStore
}

// New new wallet service
func New(walletStore core.IWalletStore) core.IWalletService {
	return &walletService{walletStore: walletStore}
}

func (s *walletService) Transfer(ctx context.Context, tx *db.DB, assetID, fromAccountID, toAccountID string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	sender, err := s.walletStore.Find(ctx, fromAccountID, assetID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return core.ErrInsufficientFunds
		}

		return err
	}

	if sender.Balance.LessThan(amount) {
		return core.ErrInsufficientFunds
	}

	sender.Balance = sender.Balance.Sub(amount)
	if err := s.walletStore.Update(ctx, tx, sender); err != nil {
		return err
	}

	receiver, err := s.walletStore.Find(ctx, toAccountID, assetID)
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			return err
		}

		receiver = &core.Wallet{
			AccountID: toAccountID,
			AssetID:   assetID,
			Balance:   amount,
		}

		return s.walletStore.Save(ctx, tx, receiver)
	}

	receiver.Balance = receiver.Balance.Add(amount)
	return s.walletStore.Update(ctx, tx, receiver)
}
