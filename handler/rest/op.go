package rest

import (
	"net/http"

	"lending/core"
	"lending/handler/param"
	"lending/handler/render"
	"lending/handler/views"

	"github.com/shopspring/decimal"
)

type opParams struct {
	UserID  string          `json:"user_id"`
	AssetID string          `json:"asset_id"`
	Amount  decimal.Decimal `json:"amount"`
}

type opFunc func(r *http.Request, params *opParams) error

func opHandler(fn opFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params opParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := fn(r, &params); err != nil {
			handleError(w, err)
			return
		}

		render.JSON(w, views.DefaultSuccess)
	}
}

func depositHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(func(r *http.Request, params *opParams) error {
		return ledgerSrv.Deposit(r.Context(), params.UserID, params.AssetID, params.Amount)
	})
}

func withdrawHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(func(r *http.Request, params *opParams) error {
		return ledgerSrv.Withdraw(r.Context(), params.UserID, params.AssetID, params.Amount)
	})
}

func borrowHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(func(r *http.Request, params *opParams) error {
		return ledgerSrv.Borrow(r.Context(), params.UserID, params.AssetID, params.Amount)
	})
}

func repayHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return opHandler(func(r *http.Request, params *opParams) error {
		return ledgerSrv.Repay(r.Context(), params.UserID, params.AssetID, params.Amount)
	})
}

func liquidateHandler(ledgerSrv core.ILedgerService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			LiquidatorID      string `json:"liquidator_id"`
			BorrowerID        string `json:"borrower_id"`
			CollateralAssetID string `json:"collateral_asset_id"`
			DebtAssetID       string `json:"debt_asset_id"`
		}
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		result, err := ledgerSrv.Liquidate(r.Context(), params.LiquidatorID, params.BorrowerID, params.CollateralAssetID, params.DebtAssetID)
		if err != nil {
			handleError(w, err)
			return
		}

		render.JSON(w, result)
	}
}
