package rest

import (
	"errors"
	"net/http"

	"lending/core"
	"lending/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	poolStore core.IPoolStore,
	positionStore core.IPositionStore,
	accountService core.IAccountService,
	ledgerService core.ILedgerService,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pools", allPoolsHandler(poolStore))
	router.Get("/pools/{asset}", poolHandler(poolStore))
	router.Get("/accounts/{user}", accountHandler(poolStore, positionStore, accountService))

	router.Post("/deposits", depositHandler(ledgerService))
	router.Post("/withdrawals", withdrawHandler(ledgerService))
	router.Post("/borrows", borrowHandler(ledgerService))
	router.Post("/repayments", repayHandler(ledgerService))
	router.Post("/liquidations", liquidateHandler(ledgerService))

	return router
}

func handleError(w http.ResponseWriter, err error) {
	var code core.ErrorCode
	if errors.As(err, &code) {
		render.Error(w, http.StatusBadRequest, int(code), err)
		return
	}

	render.BadRequest(w, err)
}
