// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/togglbot/togglbot/internal/adapter"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/models"
)

type botService struct {
	commands  CommandService
	usage     UsageService
	messenger adapter.Messenger

	logger *logger.Logger
}

func NewBotService(commands CommandService, usage UsageService, messenger adapter.Messenger, logger *logger.Logger) BotService {
	return &botService{
		commands:  commands,
		usage:     usage,
		messenger: messenger,
		logger:    logger,
	}
}

// HandleEvent implements [BotService]. Usage is recorded before command
// execution; a failed counter update is logged but never blocks the reply.
func (b *botService) HandleEvent(ctx context.Context, event models.MessageEvent) error {
	log := logger.FromContext(ctx)

	if err := b.usage.Record(ctx, event.LineUserID); err != nil {
		log.Err(err).
			Str("func", "*botService.HandleEvent").
			Str("line_user_id", event.LineUserID).
			Msg("error recording usage")
	}

	reply := b.commands.Execute(ctx, event.LineUserID, event.Text)

	if err := b.messenger.Reply(ctx, event.ReplyToken, reply); err != nil {
		log.Err(err).
			Str("func", "*botService.HandleEvent").
			Str("line_user_id", event.LineUserID).
			Msg("error sending reply")
		return fmt.Errorf("send reply: %w", err)
	}

	return nil
}
