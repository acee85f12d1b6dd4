package controllers

import (
	"net/http"

	"github.com/davidalonso/gamevault-backend/api/responses"
	"github.com/davidalonso/gamevault-backend/internal/stats"
	pkgerrors "github.com/davidalonso/gamevault-backend/pkg/errors"
	"github.com/davidalonso/gamevault-backend/pkg/logger"
)

type statsPayload struct {
	Success bool         `json:"success"`
	Stats   *stats.Stats `json:"stats"`
}

// GamesStats summarizes the caller's collection.
func GamesStats(svc stats.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "stats service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID, err := principal(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		summary, err := svc.Compute(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, statsPayload{Success: true, Stats: summary})
	}
}
