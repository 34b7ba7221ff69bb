package cmd

import (
	"time"

	"lending/core"

	"github.com/jinzhu/gorm"
	"github.com/spf13/cobra"
)

var setPriceCmd = &cobra.Command{
	Use:     "set-price",
	Aliases: []string{"sp"},
	Short:   "post an oracle price",
	Long: `flags->
	asset: asset id
	price: price of the asset`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		assetID, e := cmd.Flags().GetString("asset")
		if e != nil || assetID == "" {
			panic("invalid assetID")
		}

		value := mustDecimalFlag(cmd, "price")
		if !value.IsPositive() {
			panic("invalid price")
		}

		database := provideDatabase()
		defer database.Close()

		priceStore := providePriceStore(database)

		price, err := priceStore.Find(ctx, assetID)
		if err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				panic(err)
			}

			price = &core.Price{AssetID: assetID}
		}

		price.Price = value
		price.Time = time.Now()

		if price.ID == 0 {
			err = priceStore.Save(ctx, database, price)
		} else {
			err = priceStore.Update(ctx, database, price)
		}

		if err != nil {
			panic(err)
		}

		cmd.Println("price of", assetID, "set to", value)
	},
}

func init() {
	rootCmd.AddCommand(setPriceCmd)

	setPriceCmd.Flags().String("asset", "", "asset id")
	setPriceCmd.Flags().String("price", "0", "asset price")
}
