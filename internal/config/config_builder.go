package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Built-in fallbacks applied as the lowest-priority configuration source.
const (
	defaultHTTPAddress    = ":8000"
	defaultRequestTimeout = 30 * time.Second

	defaultTogglBaseURL   = "https://api.track.toggl.com/api/v9"
	defaultTogglReports   = "https://api.track.toggl.com/reports/api/v2/details"
	defaultTogglTimeout   = 15 * time.Second
	defaultRemindInterval = time.Hour
	defaultRunningAlert   = 3 * time.Hour

	defaultDSN      = "togglbot.db"
	defaultLanguage = "ja"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// withDefaults appends the built-in fallback values as the last (lowest
// priority) source, so mergo only fills fields left empty by env, flags,
// and the JSON file.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			Language: defaultLanguage,
		},
		Toggl: Toggl{
			BaseURL:        defaultTogglBaseURL,
			ReportsURL:     defaultTogglReports,
			RequestTimeout: defaultTogglTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			RemindInterval:        defaultRemindInterval,
			RunningAlertThreshold: defaultRunningAlert,
		},
	})

	return b
}
