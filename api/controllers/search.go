package controllers

import (
	"net/http"

	"github.com/davidalonso/gamevault-backend/api/responses"
	"github.com/davidalonso/gamevault-backend/api/validators"
	"github.com/davidalonso/gamevault-backend/internal/search"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
)

type searchPayload struct {
	Success bool                      `json:"success"`
	Count   int                       `json:"count"`
	Data    []search.NormalizedResult `json:"data"`
	Cached  bool                      `json:"cached"`
}

// GamesSearch proxies catalog lookups, serving cached matches when present.
func GamesSearch(svc search.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "search service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		query := validators.QueryString(r, "q")
		platform := validators.QueryString(r, "platform")

		result, err := svc.Search(r.Context(), query, platform)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := result.Items
		if items == nil {
			items = []search.NormalizedResult{}
		}

		responses.WriteJSON(w, http.StatusOK, searchPayload{
			Success: true,
			Count:   len(items),
			Data:    items,
			Cached:  result.Cached,
		})
	}
}
