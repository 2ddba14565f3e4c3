// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/app"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// webhook receives LINE platform deliveries on POST /webhook.
//
// A request whose X-Line-Signature does not verify is answered with 400;
// every other outcome is 200 with body "OK". Command execution happens in the
// background so the platform never waits on Toggl, and command failures are
// reported to the user in chat rather than through the webhook status.
func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	events, err := h.parser.ParseEvents(r)
	if err != nil {
		if errors.Is(err, adapter.ErrInvalidSignature) {
			log.Warn().Str("func", "*Handler.webhook").Msg("invalid webhook signature")
			http.Error(w, app.MsgInvalidSignature, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.webhook").Msg("error parsing webhook request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	for _, event := range events {
		// The request context dies when this handler returns; keep its
		// values (trace logger) but not its cancellation.
		go h.dispatch(context.WithoutCancel(r.Context()), event)
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) dispatch(ctx context.Context, event models.MessageEvent) {
	if err := h.services.BotService.HandleEvent(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*Handler.dispatch").
			Str("line_user_id", event.LineUserID).
			Msg("error handling message event")
	}
}
