package rest

import (
	"net/http"

	"lending/core"
	"lending/handler/render"
	"lending/handler/views"

	"github.com/go-chi/chi"
)

func allPoolsHandler(poolStore core.IPoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pools, e := poolStore.All(r.Context())
		if e != nil {
			render.BadRequest(w, e)
			return
		}

		poolViews := make([]*views.Pool, 0, len(pools))
		for _, p := range pools {
			poolViews = append(poolViews, views.NewPool(p))
		}

		render.JSON(w, poolViews)
	}
}

func poolHandler(poolStore core.IPoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := chi.URLParam(r, "asset")

		pool, e := poolStore.Find(r.Context(), assetID)
		if e != nil {
			render.NotFoundRequest(w, core.ErrPoolNotFound)
			return
		}

		render.JSON(w, views.NewPool(pool))
	}
}
