package wallet

import (
	"context"

	"lending/core"

	"github.com/fox-one/pkg/store/db"
)

type walletStore struct {
	db *db.DB
}

// New new wallet store
func New(db *db.DB) core.IWalletStore {
	return &walletStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Wallet{})
		if err := tx.AutoMigrate(core.Wallet{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *walletStore) Save(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	return tx.Update().Create(wallet).Error
}

func (s *walletStore) Find(ctx context.Context, accountID, assetID string) (*core.Wallet, error) {
	var wallet core.Wallet
	if err := s.db.View().Where("account_id=? and asset_id=?", accountID, assetID).First(&wallet).Error; err != nil {
		return nil, err
	}

	return &wallet, nil
}

func (s *walletStore) FindByAccount(ctx context.Context, accountID string) ([]*core.Wallet, error) {
	var wallets []*core.Wallet
	if err := s.db.View().Where("account_id=?", accountID).Find(&wallets).Error; err != nil {
		return nil, err
	}

	return wallets, nil
}

func (s *walletStore) Update(ctx context.Context, tx *db.DB, wallet *core.Wallet) error {
	version := wallet.Version
	wallet.Version++
	return tx.Update().Model(core.Wallet{}).Where("account_id=? and asset_id=? and version=?", wallet.AccountID, wallet.AssetID, version).Update(wallet).Error
}
