package http

import (
	"net/http"

	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/utils"
	"github.com/togglbot/togglbot/models"
)

func (h *Handler) getAppVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAppVersion").Msg("error writing response")
	}
}
