package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/mock"
	"github.com/togglbot/togglbot/models"
	"go.uber.org/mock/gomock"
)

func newTestBotSvc(t *testing.T, ctrl *gomock.Controller) (BotService, *mock.MockCommandService, *mock.MockUsageService, *mock.MockMessenger) {
	t.Helper()
	commands := mock.NewMockCommandService(ctrl)
	usage := mock.NewMockUsageService(ctrl)
	messenger := mock.NewMockMessenger(ctrl)
	svc := NewBotService(commands, usage, messenger, logger.NewLogger("test"))
	return svc, commands, usage, messenger
}

func TestBotService_HandleEvent_RepliesWithCommandResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, commands, usage, messenger := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	event := models.MessageEvent{LineUserID: "U1", ReplyToken: "rt-1", Text: "status"}

	gomock.InOrder(
		usage.EXPECT().Record(ctx, "U1").Return(nil),
		commands.EXPECT().Execute(ctx, "U1", "status").Return("all quiet"),
		messenger.EXPECT().Reply(ctx, "rt-1", "all quiet").Return(nil),
	)

	require.NoError(t, svc.HandleEvent(ctx, event))
}

func TestBotService_HandleEvent_UsageFailureDoesNotBlockReply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, commands, usage, messenger := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	event := models.MessageEvent{LineUserID: "U1", ReplyToken: "rt-1", Text: "help"}

	usage.EXPECT().Record(ctx, "U1").Return(errors.New("db down"))
	commands.EXPECT().Execute(ctx, "U1", "help").Return("usage text")
	messenger.EXPECT().Reply(ctx, "rt-1", "usage text").Return(nil)

	require.NoError(t, svc.HandleEvent(ctx, event))
}

func TestBotService_HandleEvent_ReplyFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, commands, usage, messenger := newTestBotSvc(t, ctrl)
	ctx := context.Background()

	event := models.MessageEvent{LineUserID: "U1", ReplyToken: "rt-1", Text: "help"}

	usage.EXPECT().Record(ctx, "U1").Return(nil)
	commands.EXPECT().Execute(ctx, "U1", "help").Return("usage text")
	messenger.EXPECT().Reply(ctx, "rt-1", "usage text").Return(errors.New("line api 500"))

	err := svc.HandleEvent(ctx, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send reply")
}
