// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/mock"
	"github.com/togglbot/togglbot/internal/validators"
	"github.com/togglbot/togglbot/models"
	"go.uber.org/mock/gomock"
)

func newTestCredentialsSvc(t *testing.T, ctrl *gomock.Controller) (CredentialsService, *mock.MockCredentialsRepository, *mock.MockTokenCipher) {
	t.Helper()
	repo := mock.NewMockCredentialsRepository(ctrl)
	cipher := mock.NewMockTokenCipher(ctrl)
	svc := NewCredentialsService(repo, cipher, validators.NewCredentialsValidator(), logger.NewLogger("test"))
	return svc, repo, cipher
}

func TestCredentialsService_Register_SealsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cipher := newTestCredentialsSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("sixteen-byte-salt")

	gomock.InOrder(
		cipher.EXPECT().GenerateSalt().Return(salt, nil),
		cipher.EXPECT().Seal("toggl-api-token", salt).Return("sealed-blob", nil),
		repo.EXPECT().UpsertCredentials(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, creds models.Credentials) (models.Credentials, error) {
				assert.Empty(t, creds.APIToken, "plaintext token must not reach storage")
				assert.Equal(t, "sealed-blob", creds.APITokenCipher)
				assert.Equal(t, base64.StdEncoding.EncodeToString(salt), creds.KeySalt)
				return creds, nil
			},
		),
	)

	stored, err := svc.Register(ctx, models.Credentials{
		LineUserID:  "U123",
		UserName:    "alice",
		APIToken:    "toggl-api-token",
		WorkspaceID: "777",
	})

	require.NoError(t, err)
	assert.Equal(t, "toggl-api-token", stored.APIToken, "caller keeps the plaintext token")
}

func TestCredentialsService_Register_TruncatesUserName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cipher := newTestCredentialsSvc(t, ctrl)
	ctx := context.Background()

	cipher.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	cipher.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("blob", nil)
	repo.EXPECT().UpsertCredentials(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, creds models.Credentials) (models.Credentials, error) {
			assert.Len(t, []rune(creds.UserName), 50)
			return creds, nil
		},
	)

	_, err := svc.Register(ctx, models.Credentials{
		LineUserID:  "U123",
		UserName:    strings.Repeat("あ", 60),
		APIToken:    "token",
		WorkspaceID: "777",
	})
	require.NoError(t, err)
}

func TestCredentialsService_Register_InvalidWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestCredentialsSvc(t, ctrl)

	_, err := svc.Register(context.Background(), models.Credentials{
		LineUserID:  "U123",
		APIToken:    "token",
		WorkspaceID: "not-a-number",
	})
	assert.ErrorIs(t, err, validators.ErrWorkspaceIDNotNumeric)
}

func TestCredentialsService_Register_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, cipher := newTestCredentialsSvc(t, ctrl)

	cipher.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	cipher.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("", errors.New("cipher broken"))

	_, err := svc.Register(context.Background(), models.Credentials{
		LineUserID:  "U123",
		APIToken:    "token",
		WorkspaceID: "777",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seal token")
}

func TestCredentialsService_Resolve_UnsealsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cipher := newTestCredentialsSvc(t, ctrl)
	ctx := context.Background()

	salt := []byte("stored-salt")
	repo.EXPECT().GetCredentials(ctx, "U123").Return(models.Credentials{
		LineUserID:     "U123",
		APITokenCipher: "sealed-blob",
		KeySalt:        base64.StdEncoding.EncodeToString(salt),
		WorkspaceID:    "777",
	}, nil)
	cipher.EXPECT().Open("sealed-blob", salt).Return("toggl-api-token", nil)

	creds, err := svc.Resolve(ctx, "U123")

	require.NoError(t, err)
	assert.Equal(t, "toggl-api-token", creds.APIToken)
}

func TestCredentialsService_ResolveAll_SkipsCorruptRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, cipher := newTestCredentialsSvc(t, ctrl)
	ctx := context.Background()

	goodSalt := base64.StdEncoding.EncodeToString([]byte("good-salt"))
	repo.EXPECT().ListCredentials(ctx).Return([]models.Credentials{
		{LineUserID: "U1", APITokenCipher: "good-blob", KeySalt: goodSalt},
		{LineUserID: "U2", APITokenCipher: "bad-blob", KeySalt: goodSalt},
	}, nil)
	cipher.EXPECT().Open("good-blob", []byte("good-salt")).Return("token-1", nil)
	cipher.EXPECT().Open("bad-blob", []byte("good-salt")).Return("", errors.New("auth failed"))

	all, err := svc.ResolveAll(ctx)

	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "U1", all[0].LineUserID)
	assert.Equal(t, "token-1", all[0].APIToken)
}
