package cmd

import (
	"encoding/json"

	"lending/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/spf13/cobra"
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "deposit into a pool",
	Run:   runOp("deposit"),
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "withdraw from a pool",
	Run:   runOp("withdraw"),
}

var borrowCmd = &cobra.Command{
	Use:   "borrow",
	Short: "borrow from a pool",
	Run:   runOp("borrow"),
}

var repayCmd = &cobra.Command{
	Use:   "repay",
	Short: "repay into a pool",
	Run:   runOp("repay"),
}

func runOp(op string) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		ctx = logger.WithContext(ctx, logger.FromContext(ctx).WithField("trace", id.GenTraceID()))

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

		ledgerService := provideLedgerService(database)

		var err error
		switch op {
		case "deposit":
			err = ledgerService.Deposit(ctx, userID, assetID, amount)
		case "withdraw":
			err = ledgerService.Withdraw(ctx, userID, assetID, amount)
		case "borrow":
			err = ledgerService.Borrow(ctx, userID, assetID, amount)
		case "repay":
			err = ledgerService.Repay(ctx, userID, assetID, amount)
		}

		if err != nil {
			panic(err)
		}

		cmd.Println(op, "done")
	}
}

var liquidateCmd = &cobra.Command{
	Use:   "liquidate",
	Short: "liquidate an unhealthy account",
	Long: `flags->
	liquidator: account repaying the debt
	borrower: account being liquidated
	collateral: asset id of the collateral to seize
	debt: asset id of the debt to repay`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		liquidatorID, _ := cmd.Flags().GetString("liquidator")
		borrowerID, _ := cmd.Flags().GetString("borrower")
		collateralAssetID, _ := cmd.Flags().GetString("collateral")
		debtAssetID, _ := cmd.Flags().GetString("debt")

		if liquidatorID == "" || borrowerID == "" || collateralAssetID == "" || debtAssetID == "" {
			panic("missing flags")
		}

		database := provideDatabase()
		defer database.Close()

		ledgerService := provideLedgerService(database)

		result, err := ledgerService.Liquidate(ctx, liquidatorID, borrowerID, collateralAssetID, debtAssetID)
		if err != nil {
			panic(err)
		}

		bs, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			panic(err)
		}

		cmd.Println(string(bs))
	},
}

func init() {
	for _, c := range []*cobra.Command{depositCmd, withdrawCmd, borrowCmd, repayCmd} {
		c.Flags().String("user", "", "account id")
		c.Flags().String("asset", "", "asset id")
		c.Flags().String("amount", "0", "amount")
		rootCmd.AddCommand(c)
	}

	liquidateCmd.Flags().String("liquidator", "", "liquidator account id")
	liquidateCmd.Flags().String("borrower", "", "borrower account id")
	liquidateCmd.Flags().String("collateral", "", "collateral asset id")
	liquidateCmd.Flags().String("debt", "", "debt asset id")
	rootCmd.AddCommand(liquidateCmd)
}
