package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// insecureParser decodes webhook bodies without verifying X-Line-Signature.
// It exists for local runs without real channel credentials and must never be
// wired outside test mode.
type insecureParser struct {
	logger *logger.Logger
}

// NewInsecureParser returns an [EventParser] that accepts any request.
func NewInsecureParser(logger *logger.Logger) EventParser {
	logger.Warn().Msg("webhook signature verification is DISABLED")
	return &insecureParser{logger: logger}
}

// webhookBody mirrors the wire format of a LINE webhook delivery, reduced to
// the fields the insecure parser reads.
type webhookBody struct {
	Events []struct {
		Type       string `json:"type"`
		ReplyToken string `json:"replyToken"`
		Source     struct {
			UserID string `json:"userId"`
		} `json:"source"`
		Message struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"message"`
	} `json:"events"`
}

func (p *insecureParser) ParseEvents(r *http.Request) ([]models.MessageEvent, error) {
	var body webhookBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode webhook body: %w", err)
	}

	var out []models.MessageEvent
	for _, event := range body.Events {
		if event.Type != "message" || event.Message.Type != "text" {
			continue
		}
		out = append(out, models.MessageEvent{
			LineUserID: event.Source.UserID,
			ReplyToken: event.ReplyToken,
			Text:       event.Message.Text,
		})
	}
	return out, nil
}

// logMessenger writes outbound messages to the log instead of delivering
// them. Paired with insecureParser in test mode.
type logMessenger struct {
	logger *logger.Logger
}

// NewLogMessenger returns a [Messenger] that only logs.
func NewLogMessenger(logger *logger.Logger) Messenger {
	return &logMessenger{logger: logger}
}

func (m *logMessenger) Reply(_ context.Context, replyToken string, text string) error {
	m.logger.Info().
		Str("func", "*logMessenger.Reply").
		Str("reply_token", replyToken).
		Str("text", text).
		Msg("test mode reply")
	return nil
}

func (m *logMessenger) Push(_ context.Context, lineUserID string, text string) error {
	m.logger.Info().
		Str("func", "*logMessenger.Push").
		Str("line_user_id", lineUserID).
		Str("text", text).
		Msg("test mode push")
	return nil
}
