package main

import (
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration from the root into subcommands.
type app struct {
	configPath string
	cfg        Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "linealign",
		Short:        "Align and merge OCR readings of the same text line",
		SilenceUsage: true,
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		return a.resolve(cmd)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.Float64("gap-open", 0, "score added when a gap run starts (<= 0)")
	pf.Float64("gap-skew", 0, "score added per extra gap in a run (<= 0)")
	pf.Bool("fold", false, "transliterate input to ASCII and collapse whitespace")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(
		newDistanceCmd(a),
		newRankCmd(a),
		newAlignCmd(a),
		newAlignAllCmd(a),
	)

	return root
}

// resolve layers config file, environment and explicitly set flags.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("gap-open") {
		if cfg.GapOpen, err = flags.GetFloat64("gap-open"); err != nil {
			return err
		}
	}
	if flags.Changed("gap-skew") {
		if cfg.GapSkew, err = flags.GetFloat64("gap-skew"); err != nil {
			return err
		}
	}
	if flags.Changed("fold") {
		if cfg.Fold, err = flags.GetBool("fold"); err != nil {
			return err
		}
	}
	if flags.Lookup("max-ties") != nil && flags.Changed("max-ties") {
		if cfg.MaxTies, err = flags.GetInt("max-ties"); err != nil {
			return err
		}
	}
	if flags.Lookup("table") != nil && flags.Changed("table") {
		if cfg.Table, err = flags.GetString("table"); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	glog.V(1).Infof("config: %+v", cfg)

	return nil
}

func exactArgs(n int, names string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("expected %s, got %d argument(s)", names, len(args))
		}

		return nil
	}
}
