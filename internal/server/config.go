package server

import (
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/ironsheep/steg-mcp/internal/carrier"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvMaxCarrierBytes = "STEG_MCP_MAX_CARRIER_BYTES"
	EnvUseAlpha        = "STEG_MCP_USE_ALPHA"
	EnvOutputFormat    = "STEG_MCP_OUTPUT_FORMAT"
)

// DefaultMaxCarrierBytes is the largest carrier file the server will read.
const DefaultMaxCarrierBytes = 16 << 20

// Config holds server-wide defaults. Tool arguments override UseAlpha and
// OutputFormat per call.
type Config struct {
	// MaxCarrierBytes caps the size of any image file read from disk.
	MaxCarrierBytes int64

	// UseAlpha is the default for the use_alpha tool argument.
	UseAlpha bool

	// OutputFormat is used by steg_encode when neither format nor an
	// output_path extension selects one. Always lossless.
	OutputFormat carrier.Format
}

// DefaultConfig returns the configuration used when no environment
// variables are set.
func DefaultConfig() Config {
	return Config{
		MaxCarrierBytes: DefaultMaxCarrierBytes,
		UseAlpha:        false,
		OutputFormat:    carrier.PNG,
	}
}

// ConfigFromEnv builds a Config from the process environment. Invalid values
// are logged and replaced by their defaults.
func ConfigFromEnv() Config {
	return configFromLookup(os.LookupEnv)
}

func configFromLookup(lookup func(string) (string, bool)) Config {
	cfg := DefaultConfig()

	if v, ok := lookup(EnvMaxCarrierBytes); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			log.WithFields(log.Fields{"var": EnvMaxCarrierBytes, "value": v}).
				Warn("Ignoring invalid carrier size limit")
		} else {
			cfg.MaxCarrierBytes = n
		}
	}

	if v, ok := lookup(EnvUseAlpha); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.WithFields(log.Fields{"var": EnvUseAlpha, "value": v}).
				Warn("Ignoring invalid boolean")
		} else {
			cfg.UseAlpha = b
		}
	}

	if v, ok := lookup(EnvOutputFormat); ok {
		f, err := carrier.ParseFormat(v)
		switch {
		case err != nil:
			log.WithFields(log.Fields{"var": EnvOutputFormat, "value": v}).
				Warn("Ignoring unknown output format")
		case !f.Lossless():
			log.WithFields(log.Fields{"var": EnvOutputFormat, "value": v}).
				Warn("Ignoring lossy output format")
		default:
			cfg.OutputFormat = f
		}
	}

	return cfg
}
