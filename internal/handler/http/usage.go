// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/togglbot/togglbot/internal/app"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/utils"
	"github.com/togglbot/togglbot/models"
)

// getUsage serves GET /api/usage/: per-user interaction counters, most
// recent first. Optional query parameters: since (RFC 3339) and limit.
func (h *Handler) getUsage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var filter models.UsageFilter

	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, app.MsgInvalidQueryParameter, http.StatusBadRequest)
			return
		}
		filter.Since = since
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			http.Error(w, app.MsgInvalidQueryParameter, http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}

	usage, err := h.services.UsageService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUsage").Msg("error listing usage")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}
	if usage == nil {
		usage = []models.Usage{}
	}

	if _, err = utils.WriteJSON(w, usage, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getUsage").Msg("error writing response")
	}
}
