package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are parsed from strings like "1h" or "30s" via the [Duration]
// wrapper.
type StructuredJSONConfig struct {
	App struct {
		TokenCipherKey string `json:"token_cipher_key"`
		TestMode       bool   `json:"test_mode"`
		Language       string `json:"language"`
		Version        string `json:"version"`
	} `json:"app,omitempty"`

	Line struct {
		ChannelSecret      string `json:"channel_secret"`
		ChannelAccessToken string `json:"channel_access_token"`
	} `json:"line,omitempty"`

	Toggl struct {
		BaseURL        string   `json:"base_url"`
		ReportsURL     string   `json:"reports_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"toggl,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RemindInterval        Duration `json:"remind_interval"`
		RunningAlertThreshold Duration `json:"running_alert_threshold"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenCipherKey: jsonCfg.App.TokenCipherKey,
			TestMode:       jsonCfg.App.TestMode,
			Language:       jsonCfg.App.Language,
			Version:        jsonCfg.App.Version,
		},
		Line: Line{
			ChannelSecret:      jsonCfg.Line.ChannelSecret,
			ChannelAccessToken: jsonCfg.Line.ChannelAccessToken,
		},
		Toggl: Toggl{
			BaseURL:        jsonCfg.Toggl.BaseURL,
			ReportsURL:     jsonCfg.Toggl.ReportsURL,
			RequestTimeout: time.Duration(jsonCfg.Toggl.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			RemindInterval:        time.Duration(jsonCfg.Workers.RemindInterval),
			RunningAlertThreshold: time.Duration(jsonCfg.Workers.RunningAlertThreshold),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
