package cmd

import (
	"lending/core"

	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
)

// credit an account balance directly, for bootstrapping test environments
var fundCmd = &cobra.Command{
	Use:   "fund",
	Short: "credit an account wallet balance",
	Long: `flags->
	user: account id
	asset: asset id
	amount: amount to credit`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		userID, e := cmd.Flags().GetString("user")
		if e != nil || userID == "" {
			panic("invalid user")
		}
		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid assetID")
		}

		amount := mustDecimalFlag(cmd, "amount")
		if !amount.IsPositive() {
			panic("invalid amount")
		}

		database := provideDatabase()
		defer database.Close()

		walletStore := provideWalletStore(database)

		balance, err := walletStore.Find(ctx, userID, assetID)
		if err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				panic(err)
			}

			balance = &core.Wallet{AccountID: userID, AssetID: assetID}
		}

		balance.Balance = balance.Balance.Add(amount)

		if balance.ID == 0 {
			err = walletStore.Save(ctx, database, balance)
		} else {
			err = walletStore.Update(ctx, database, balance)
		}

		if err != nil {
			panic(err)
		}

		cmd.Println("balance of", userID, "is now", balance.Balance, assetID)
	},
}

func init() {
	rootCmd.AddCommand(fundCmd)

	fundCmd.Flags().String("user", "", "account id")
	fundCmd.Flags().String("asset", "", "asset id")
	fundCmd.Flags().String("amount", "0", "amount to credit")
}
