package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ntauth/orderkey"
	"github.com/ntauth/orderkey/internal/config"
	"github.com/ntauth/orderkey/internal/logging"
)

// app is what every subcommand runs against once flags and config are
// resolved.
type app struct {
	cfg    *config.Config
	gen    *orderkey.Generator
	logger zerolog.Logger
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"alphabet":      "alphabet",
	"output":        "output",
	"log.level":     "log-level",
	"log.pretty":    "log-pretty",
	"jitter.spread": "jitter",
	"jitter.seed":   "seed",
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:          "orderkey",
		Short:        "Fractional order key generator",
		Long:         "Generate short keys that sort between two existing keys, so list items can be reordered without renumbering.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.New(configFile)
			if err != nil {
				return err
			}
			for key, name := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
					return fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
			if f := cmd.Flags().Lookup("addr"); f != nil {
				if err := v.BindPFlag("http.addr", f); err != nil {
					return fmt.Errorf("bind flag addr: %w", err)
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logging.New(cfg.Log, cmd.ErrOrStderr())
			a.gen, err = cfg.Generator(a.logger)
			if err != nil {
				return err
			}
			a.logger.Debug().
				Str("alphabet", a.gen.Alphabet().String()).
				Int("jitter", cfg.Jitter.Spread).
				Msg("configured")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "config file (default ./orderkey.yaml)")
	pf.StringP("alphabet", "a", "", "digit alphabet: base62, base10, base95 or a literal ascending digit string")
	pf.StringP("output", "o", "", "output format: text, json or yaml")
	pf.String("log-level", "", "log level: trace, debug, info, warn, error")
	pf.Bool("log-pretty", false, "human readable logs")
	pf.Int("jitter", 0, "randomize generated digits up to this many steps from the center")
	pf.Int64("seed", 0, "seed for --jitter (default: clock)")

	root.AddCommand(
		newBetweenCmd(a),
		newValidateCmd(a),
		newApproxCmd(a),
		newRankCmd(a),
		newServeCmd(a),
	)
	return root
}

// bound turns the CLI spelling of an open end ("-" or "") into "".
func bound(args []string, i int) string {
	if i >= len(args) || args[i] == "-" {
		return ""
	}
	return args[i]
}
