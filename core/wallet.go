package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Wallet per (account, asset) balance row
type Wallet struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AccountID string          `sql:"size:64;unique_index:wallet_idx" json:"account_id"`
	AssetID   string          `sql:"size:36;unique_index:wallet_idx" json:"asset_id"`
	Balance   decimal.Decimal `sql:"type:decimal(32,16)" json:"balance"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ReserveAccountID account holding a pool's underlying reserve
func ReserveAccountID(assetID string) string {
	return "reserve:" + assetID
}

// IWalletStore wallet store interface
type IWalletStore interface {
	Save(ctx context.Context, tx *db.DB, wallet *Wallet) error
	Find(ctx context.Context, accountID, assetID string) (*Wallet, error)
	FindByAccount(ctx context.Context, accountID string) ([]*Wallet, error)
	Update(ctx context.Context, tx *db.DB, wallet *Wallet) error
}

// IWalletService transfer collaborator contract.
//
// Transfer moves amount of the asset between two accounts within the given
// transaction; it fails with ErrInsufficientFunds when the sender balance is
// short, leaving nothing applied.
type IWalletService interface {
	Transfer(ctx context.Context, tx *db.DB, assetID, fromAccountID, toAccountID string, amount decimal.Decimal) error
}
