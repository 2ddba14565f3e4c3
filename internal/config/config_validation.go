// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// In test mode the LINE channel credentials may be absent: the webhook
// accepts unsigned requests and outbound delivery is suppressed, so there is
// nothing to authenticate against.
func (cfg *StructuredConfig) validate() error {
	if !cfg.App.TestMode {
		if cfg.Line.ChannelSecret == "" || cfg.Line.ChannelAccessToken == "" {
			return ErrMissingLineCredentials
		}
	}

	if cfg.App.TokenCipherKey == "" {
		return ErrMissingTokenCipherKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RemindInterval <= 0 || cfg.Workers.RunningAlertThreshold <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
