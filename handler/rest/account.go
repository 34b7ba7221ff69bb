package rest

import (
	"net/http"
	"time"

	"lending/core"
	"lending/handler/render"
	"lending/handler/views"

	"github.com/go-chi/chi"
)

func accountHandler(poolStore core.IPoolStore, positionStore core.IPositionStore, accountSrv core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := chi.URLParam(r, "user")

		positions, e := positionStore.FindByUser(ctx, userID)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		pools, e := poolStore.AllAsMap(ctx)
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		hf, e := accountSrv.HealthFactor(ctx, positions, time.Now())
		if e != nil {
			handleError(w, e)
			return
		}

		positionViews := make([]*views.Position, 0, len(positions))
		for _, p := range positions {
			view := &views.Position{Position: *p}
			if pool, found := pools[p.AssetID]; found {
				view.Symbol = pool.Symbol
			}
			positionViews = append(positionViews, view)
		}

		render.JSON(w, views.Account{
			UserID:       userID,
			HealthFactor: hf,
			Positions:    positionViews,
		})
	}
}
