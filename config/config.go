package config

import (
	// Local Packages
	errors "tx-ledger/errors"
)

var DefaultConfig = []byte(`
application: "tx-ledger"

logger:
  level: "info"

is_prod_mode: false

stream:
  channel_size: 1000

ledger:
  amount_precision: 4
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	IsProdMode  bool   `koanf:"is_prod_mode"`
	Stream      Stream `koanf:"stream"`
	Ledger      Ledger `koanf:"ledger"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Stream struct {
	// ChannelSize bounds the ingestion channel. Any positive value is
	// correct; it only tunes how far the feeder can run ahead.
	ChannelSize int `koanf:"channel_size"`
}

type Ledger struct {
	// AmountPrecision is the number of decimal places amounts are rounded
	// to at ingestion and rendered with in the report.
	AmountPrecision int32 `koanf:"amount_precision"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Stream.ChannelSize <= 0 {
		ve.Add("stream.channel_size", "must be positive")
	}
	if c.Ledger.AmountPrecision < 0 || c.Ledger.AmountPrecision > 8 {
		ve.Add("ledger.amount_precision", "must be between 0 and 8")
	}

	return ve.Err()
}
