package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"lending/core"
	"lending/handler/views"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var addPoolCmd = &cobra.Command{
	Use:     "add-pool",
	Aliases: []string{"ap"},
	Short:   "add lending pool",
	Long: `flags->
	asset: asset id of the pool
	symbol: display symbol
	rate: per-second borrow interest rate
	threshold: liquidation threshold, in (0, 1]
	bonus: liquidation bonus paid to the liquidator
	close-factor: max share of the debt one liquidation may repay`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid assetID")
		}
		symbol, e := cmd.Flags().GetString("symbol")
		if e != nil || symbol == "" {
			panic("invalid symbol")
		}

		rate := mustDecimalFlag(cmd, "rate")
		threshold := mustDecimalFlag(cmd, "threshold")
		bonus := mustDecimalFlag(cmd, "bonus")
		closeFactor := mustDecimalFlag(cmd, "close-factor")

		if err := validatePoolParams(rate, threshold, bonus, closeFactor); err != nil {
			panic(err)
		}

		database := provideDatabase()
		defer database.Close()

		poolStore := providePoolStore(database)

		p := core.Pool{
			AssetID:              assetID,
			Symbol:               strings.ToUpper(symbol),
			InterestRate:         rate,
			LiquidationThreshold: threshold,
			LiquidationBonus:     bonus,
			CloseFactor:          closeFactor,
			LastUpdated:          time.Now(),
		}

		if err := poolStore.Save(ctx, database, &p); err != nil {
			panic(err)
		}

		cmd.Println("pool", p.Symbol, "created")
	},
}

var listPoolsCmd = &cobra.Command{
	Use:     "list-pools",
	Aliases: []string{"lp"},
	Short:   "list lending pools",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		pools, err := providePoolStore(database).All(ctx)
		if err != nil {
			panic(err)
		}

		poolViews := make([]*views.Pool, 0, len(pools))
		for _, p := range pools {
			poolViews = append(poolViews, views.NewPool(p))
		}

		bs, err := json.MarshalIndent(poolViews, "", "    ")
		if err != nil {
			panic(err)
		}

		cmd.Println(string(bs))
	},
}

// validatePoolParams gates the pool risk parameters before anything is
// written: a negative rate would shrink balances on accrual, and a bonus or
// close factor outside their ranges distorts every liquidation quote.
func validatePoolParams(rate, threshold, bonus, closeFactor decimal.Decimal) error {
	one := decimal.New(1, 0)

	if rate.IsNegative() {
		return errors.New("invalid rate: must be non-negative")
	}

	if !threshold.IsPositive() || threshold.GreaterThan(one) {
		return errors.New("invalid threshold: must be in (0, 1]")
	}

	if bonus.IsNegative() || bonus.GreaterThanOrEqual(one) {
		return errors.New("invalid bonus: must be in [0, 1)")
	}

	if !closeFactor.IsPositive() || closeFactor.GreaterThan(one) {
		return errors.New("invalid close-factor: must be in (0, 1]")
	}

	return nil
}

func mustDecimalFlag(cmd *cobra.Command, name string) decimal.Decimal {
	value, e := cmd.Flags().GetString(name)
	if e != nil {
		panic(e)
	}

	d, e := decimal.NewFromString(value)
	if e != nil {
		panic("invalid " + name)
	}

	return d
}

func init() {
	rootCmd.AddCommand(addPoolCmd)
	rootCmd.AddCommand(listPoolsCmd)

	addPoolCmd.Flags().String("asset", "", "asset id")
	addPoolCmd.Flags().String("symbol", "", "pool symbol")
	addPoolCmd.Flags().String("rate", "0", "per-second borrow interest rate")
	addPoolCmd.Flags().String("threshold", "0.8", "liquidation threshold")
	addPoolCmd.Flags().String("bonus", "0.05", "liquidation bonus")
	addPoolCmd.Flags().String("close-factor", "0.5", "close factor")
}
