package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/justicz/packing"
	"github.com/justicz/packing/internal/log"
)

const (
	OutputHex = "hex"
	OutputRaw = "raw"
)

// Config holds the CLI defaults.
type Config struct {
	ByteOrder string
	Bits      int
	Output    string
	LogLevel  string
	LogFormat string
}

type fileConfig struct {
	ByteOrder string `toml:"byte_order"`
	Bits      int    `toml:"bits"`
	Output    string `toml:"output"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

func Default() Config {
	return Config{
		ByteOrder: "big",
		Bits:      8,
		Output:    OutputHex,
		LogLevel:  "info",
		LogFormat: "console",
	}
}

// Load overlays the keys present in the TOML file at path onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("byte_order") {
		cfg.ByteOrder = strings.TrimSpace(raw.ByteOrder)
	}

	if meta.IsDefined("bits") {
		cfg.Bits = raw.Bits
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.ToLower(strings.TrimSpace(raw.Output))
	}

	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}

	if meta.IsDefined("log_format") {
		cfg.LogFormat = strings.TrimSpace(raw.LogFormat)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if _, err := packing.ParseByteOrder(cfg.ByteOrder); err != nil {
		return err
	}
	if _, err := packing.ParseBitWidth(cfg.Bits); err != nil {
		return err
	}
	if cfg.Output != OutputHex && cfg.Output != OutputRaw {
		return fmt.Errorf("unknown output %q, must be hex or raw", cfg.Output)
	}
	if _, err := log.ParseLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if _, err := log.ParseLoggerType(cfg.LogFormat); err != nil {
		return err
	}
	return nil
}

// Codec returns the codec for the configured byte order.
func (c Config) Codec() (packing.Codec, error) {
	o, err := packing.ParseByteOrder(c.ByteOrder)
	if err != nil {
		return packing.Codec{}, err
	}
	return packing.NewCodec(o), nil
}

// Width returns the configured bit width.
func (c Config) Width() (packing.BitWidth, error) {
	return packing.ParseBitWidth(c.Bits)
}
