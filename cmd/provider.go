package cmd

import (
	"lending/core"
	accountservice "lending/service/account"
	ledgerservice "lending/service/ledger"
	oracleservice "lending/service/oracle"
	walletservice "lending/service/wallet"
	"lending/store/pool"
	"lending/store/position"
	"lending/store/price"
	"lending/store/wallet"

	"github.com/fox-one/pkg/store/db"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

// ---------------store-----------------------------------------

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

func providePositionStore(db *db.DB) core.IPositionStore {
	return position.New(db)
}

func providePriceStore(db *db.DB) core.IPriceStore {
	return price.New(db)
}

func provideWalletStore(db *db.DB) core.IWalletStore {
	return wallet.New(db)
}

// ------------------service------------------------------------

func provideWalletService(walletStore core.IWalletStore) core.IWalletService {
	return walletservice.New(walletStore)
}

func providePriceService(priceStore core.IPriceStore) core.IPriceOracleService {
	return oracleservice.New(priceStore, cfg.App.PriceMaxAge())
}

func provideAccountService(
	poolStore core.IPoolStore,
	positionStore core.IPositionStore,
	priceSrv core.IPriceOracleService,
) core.IAccountService {
	return accountservice.New(poolStore, positionStore, priceSrv)
}

func provideLedgerService(database *db.DB) core.ILedgerService {
	poolStore := providePoolStore(database)
	positionStore := providePositionStore(database)
	priceService := providePriceService(providePriceStore(database))
	accountService := provideAccountService(poolStore, positionStore, priceService)
	walletService := provideWalletService(provideWalletStore(database))

	return ledgerservice.New(database, poolStore, positionStore, walletService, priceService, accountService)
}
