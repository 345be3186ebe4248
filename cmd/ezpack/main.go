package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/justicz/packing"
	"github.com/justicz/packing/internal/config"
	"github.com/justicz/packing/internal/log"
)

type options struct {
	configPath string
	order      string
	bits       int
	logLevel   string

	cfg    config.Config
	codec  packing.Codec
	width  packing.BitWidth
	logger zerolog.Logger
}

func main() {
	logger := log.New(log.Options{LogLevel: zerolog.InfoLevel})
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal().Err(err).Msg("ezpack failed")
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "ezpack",
		Short:         "Pack values into fixed-width integers and back",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.resolve(cmd.Flags(), cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "TOML file with defaults")
	flags.StringVar(&opts.order, "order", "", "byte order: big, little or native")
	flags.IntVar(&opts.bits, "bits", 0, "integer width: 8, 16, 32 or 64")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level")

	root.AddCommand(newPackCmd(opts), newUnpackCmd(opts))
	return root
}

// resolve loads the config file and applies explicitly set flags on top
func (o *options) resolve(flags *pflag.FlagSet, stderr io.Writer) error {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		cfg, err = config.Load(o.configPath)
		if err != nil {
			return err
		}
	}

	if flags.Changed("order") {
		cfg.ByteOrder = o.order
	}
	if flags.Changed("bits") {
		cfg.Bits = o.bits
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Validate has already checked every field below
	o.cfg = cfg
	o.codec, _ = cfg.Codec()
	o.width, _ = cfg.Width()
	level, _ := log.ParseLogLevel(cfg.LogLevel)
	typ, _ := log.ParseLoggerType(cfg.LogFormat)
	o.logger = log.Component(log.New(log.Options{LogLevel: level, Type: typ, Out: stderr}), "cli")

	o.logger.Debug().
		Str("config", o.configPath).
		Stringer("order", o.codec.Order()).
		Int("bits", int(o.width)).
		Msg("resolved options")
	return nil
}

func newPackCmd(opts *options) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "pack ARG...",
		Short: "Pack integers, text (str:...) and bytes (hex:...) into one byte string",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseArgs(args)
			if err != nil {
				return err
			}

			out, err := opts.codec.Pack(opts.width, values)
			if err != nil {
				return fmt.Errorf("pack: %w", err)
			}
			opts.logger.Debug().Int("args", len(args)).Int("bytes", len(out)).Msg("packed")

			w := cmd.OutOrStdout()
			if raw || opts.cfg.Output == config.OutputRaw {
				_, err = w.Write(out)
				return err
			}
			_, err = fmt.Fprintln(w, hex.EncodeToString(out))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "write raw bytes instead of hex")
	return cmd
}

func newUnpackCmd(opts *options) *cobra.Command {
	var many bool

	cmd := &cobra.Command{
		Use:   "unpack [HEX]",
		Short: "Unpack hex (or raw bytes on stdin) into integers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 {
				data, err = decodeHex(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("unpack: reading input: %w", err)
			}

			var values []uint64
			if many {
				values, err = opts.codec.UnpackMany(opts.width, data)
			} else {
				var v uint64
				v, err = opts.codec.Unpack(opts.width, data)
				values = []uint64{v}
			}
			if err != nil {
				return fmt.Errorf("unpack: %w", err)
			}
			opts.logger.Debug().Int("bytes", len(data)).Int("values", len(values)).Msg("unpacked")

			w := cmd.OutOrStdout()
			for _, v := range values {
				if _, err := fmt.Fprintln(w, strconv.FormatUint(v, 10)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&many, "many", false, "decode every group of bits/8 bytes")
	return cmd
}
