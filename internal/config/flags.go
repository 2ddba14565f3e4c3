package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (postgres URI or sqlite file path)
//	-c/-config json file path with configs
//	-token-cipher-key secret for sealing stored Toggl API tokens
//	-lang reply language ("ja", "en")
//	-test-mode run without signature checks and outbound delivery
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-remind-interval long-entry scan interval (e.g., "1h")
//	-running-alert running-entry alert threshold (e.g., "3h")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenCipherKey string
	var language string
	var testMode bool
	var requestTimeout time.Duration
	var remindInterval time.Duration
	var runningAlert time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenCipherKey, "token-cipher-key", "", "Token cipher key")
	flag.StringVar(&language, "lang", "", "Reply language")
	flag.BoolVar(&testMode, "test-mode", false, "Test mode (no signature checks, no outbound delivery)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&remindInterval, "remind-interval", 0, "Reminder scan interval (e.g., 1h)")
	flag.DurationVar(&runningAlert, "running-alert", 0, "Running-entry alert threshold (e.g., 3h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenCipherKey: tokenCipherKey,
			TestMode:       testMode,
			Language:       language,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			RemindInterval:        remindInterval,
			RunningAlertThreshold: runningAlert,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
