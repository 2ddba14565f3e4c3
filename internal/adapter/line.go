// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/togglbot/togglbot/internal/config"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

// lineAdapter implements [EventParser] and [Messenger] on top of the official
// LINE Messaging API SDK.
type lineAdapter struct {
	bot    *linebot.Client
	logger *logger.Logger
}

// NewLINEAdapter constructs the production LINE transport from the channel
// credentials. The returned value implements both [EventParser] (webhook
// signature verification and event decoding) and [Messenger] (reply and push
// delivery).
func NewLINEAdapter(cfg config.Line, logger *logger.Logger) (*lineAdapter, error) {
	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("init line client: %w", err)
	}

	return &lineAdapter{bot: bot, logger: logger}, nil
}

// ParseEvents implements [EventParser]. It verifies X-Line-Signature against
// the channel secret and returns the text message events from the body.
// A request with a missing or wrong signature yields [ErrInvalidSignature].
func (l *lineAdapter) ParseEvents(r *http.Request) ([]models.MessageEvent, error) {
	events, err := l.bot.ParseRequest(r)
	if err != nil {
		if err == linebot.ErrInvalidSignature {
			return nil, ErrInvalidSignature
		}
		return nil, fmt.Errorf("parse webhook request: %w", err)
	}

	return filterTextEvents(events), nil
}

// Reply implements [Messenger].
func (l *lineAdapter) Reply(ctx context.Context, replyToken string, text string) error {
	_, err := l.bot.ReplyMessage(replyToken, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	if err != nil {
		return fmt.Errorf("line reply: %w", err)
	}
	return nil
}

// Push implements [Messenger].
func (l *lineAdapter) Push(ctx context.Context, lineUserID string, text string) error {
	_, err := l.bot.PushMessage(lineUserID, linebot.NewTextMessage(text)).WithContext(ctx).Do()
	if err != nil {
		return fmt.Errorf("line push: %w", err)
	}
	return nil
}

func filterTextEvents(events []*linebot.Event) []models.MessageEvent {
	var out []models.MessageEvent
	for _, event := range events {
		if event.Type != linebot.EventTypeMessage || event.Source == nil {
			continue
		}
		msg, ok := event.Message.(*linebot.TextMessage)
		if !ok {
			continue
		}
		out = append(out, models.MessageEvent{
			LineUserID: event.Source.UserID,
			ReplyToken: event.ReplyToken,
			Text:       msg.Text,
		})
	}
	return out
}
