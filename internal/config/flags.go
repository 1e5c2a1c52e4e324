package config

import (
	"flag"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g. "1h", "30m")
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-sweep-interval external service expiry sweep interval
//	-prekey-check-interval pre-key depletion check interval
//	-prekey-threshold pre-key depletion warning threshold
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var sweepInterval time.Duration
	var preKeyCheckInterval time.Duration
	var preKeyThreshold int

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 1h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	flag.DurationVar(&sweepInterval, "sweep-interval", 0, "Expiry sweep interval (e.g. 1m)")
	flag.DurationVar(&preKeyCheckInterval, "prekey-check-interval", 0, "Pre-key depletion check interval")
	flag.IntVar(&preKeyThreshold, "prekey-threshold", 0, "Pre-key depletion warning threshold")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SweepInterval:       sweepInterval,
			PreKeyCheckInterval: preKeyCheckInterval,
			PreKeyThreshold:     preKeyThreshold,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// ParseClientFlags parses all client configuration flags.
//
// Flags:
//
//	-s server base URL
//	-d local sqlite cache path
//	-request-timeout request timeout (e.g. "10s")
func ParseClientFlags(args []string) (*ClientConfig, *flag.FlagSet) {
	fs := flag.NewFlagSet("keyhub-client", flag.ExitOnError)

	var serverURL string
	var cacheDSN string
	var requestTimeout time.Duration

	fs.StringVar(&serverURL, "s", "", "Server base URL")
	fs.StringVar(&cacheDSN, "d", "", "Local sqlite cache path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 10s)")

	// ExitOnError: Parse never returns a non-nil error to handle
	_ = fs.Parse(args)

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    serverURL,
			RequestTimeout: requestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cacheDSN,
			},
		},
	}, fs
}
