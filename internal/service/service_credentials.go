// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/togglbot/togglbot/internal/crypto"
	"github.com/togglbot/togglbot/internal/logger"
	"github.com/togglbot/togglbot/internal/store"
	"github.com/togglbot/togglbot/internal/validators"
	"github.com/togglbot/togglbot/models"
)

const maxUserNameLen = 50

type credentialsService struct {
	credentialsRepository store.CredentialsRepository
	cipher                crypto.TokenCipher
	validator             validators.Validator

	logger *logger.Logger
}

func NewCredentialsService(credentialsRepository store.CredentialsRepository, cipher crypto.TokenCipher, validator validators.Validator, logger *logger.Logger) CredentialsService {
	return &credentialsService{
		credentialsRepository: credentialsRepository,
		cipher:                cipher,
		validator:             validator,
		logger:                logger,
	}
}

// Register implements [CredentialsService]. The plaintext token never reaches
// the repository: it is sealed here and cleared from the stored value.
func (s *credentialsService) Register(ctx context.Context, creds models.Credentials) (models.Credentials, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("func", "*credentialsService.Register").Msg("invalid credentials")
		return models.Credentials{}, err
	}

	creds.UserName = truncateRunes(creds.UserName, maxUserNameLen)

	salt, err := s.cipher.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "*credentialsService.Register").Msg("error generating salt")
		return models.Credentials{}, fmt.Errorf("generate salt: %w", err)
	}

	blob, err := s.cipher.Seal(creds.APIToken, salt)
	if err != nil {
		log.Err(err).Str("func", "*credentialsService.Register").Msg("error sealing token")
		return models.Credentials{}, fmt.Errorf("seal token: %w", err)
	}

	plaintext := creds.APIToken
	creds.APIToken = ""
	creds.APITokenCipher = blob
	creds.KeySalt = base64.StdEncoding.EncodeToString(salt)

	stored, err := s.credentialsRepository.UpsertCredentials(ctx, creds)
	if err != nil {
		return models.Credentials{}, err
	}

	stored.APIToken = plaintext
	return stored, nil
}

// Resolve implements [CredentialsService].
func (s *credentialsService) Resolve(ctx context.Context, lineUserID string) (models.Credentials, error) {
	creds, err := s.credentialsRepository.GetCredentials(ctx, lineUserID)
	if err != nil {
		return models.Credentials{}, err
	}

	if err = s.unseal(&creds); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*credentialsService.Resolve").
			Str("line_user_id", lineUserID).
			Msg("error unsealing token")
		return models.Credentials{}, err
	}

	return creds, nil
}

// ResolveAll implements [CredentialsService]. A record that cannot be
// unsealed is logged and skipped rather than failing the whole listing.
func (s *credentialsService) ResolveAll(ctx context.Context) ([]models.Credentials, error) {
	log := logger.FromContext(ctx)

	all, err := s.credentialsRepository.ListCredentials(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Credentials, 0, len(all))
	for _, creds := range all {
		if err = s.unseal(&creds); err != nil {
			log.Err(err).
				Str("func", "*credentialsService.ResolveAll").
				Str("line_user_id", creds.LineUserID).
				Msg("skipping record: error unsealing token")
			continue
		}
		out = append(out, creds)
	}

	return out, nil
}

func (s *credentialsService) unseal(creds *models.Credentials) error {
	salt, err := base64.StdEncoding.DecodeString(creds.KeySalt)
	if err != nil {
		return fmt.Errorf("decode key salt: %w", err)
	}

	token, err := s.cipher.Open(creds.APITokenCipher, salt)
	if err != nil {
		return fmt.Errorf("open token blob: %w", err)
	}

	creds.APIToken = token
	return nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
