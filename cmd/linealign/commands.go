package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/katalvlaran/linealign/align"
	"github.com/katalvlaran/linealign/consensus"
	"github.com/katalvlaran/linealign/internal/textnorm"
	"github.com/katalvlaran/linealign/levenshtein"
	"github.com/katalvlaran/linealign/msa"
	"github.com/katalvlaran/linealign/subst"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between two lines",
		Args:  exactArgs(2, "two lines"),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := a.prepare(args[0]), a.prepare(args[1])
			_, err := fmt.Fprintln(cmd.OutOrStdout(), levenshtein.Distance(x, y))

			return err
		},
	}
}

func newRankCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rank [file]",
		Short: "Print every line pair as 'distance i j', closest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range levenshtein.DistanceAll(lines) {
				if _, err := fmt.Fprintf(out, "%d %d %d\n", e.Distance, e.I, e.J); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newAlignCmd(a *app) *cobra.Command {
	var best bool
	cmd := &cobra.Command{
		Use:   "align A B",
		Short: "List the minimal-cost alignments of two lines",
		Args:  exactArgs(2, "two lines"),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y := a.prepare(args[0]), a.prepare(args[1])
			res, err := align.Align(x, y, align.WithMaxTies(a.cfg.MaxTies))
			if err != nil {
				return err
			}
			if res.Truncated {
				glog.Warningf("align: stopped after %d tied alignments", len(res.Alignments))
			}

			alignments := res.Alignments
			if best {
				b, _ := align.Best(res, align.DefaultGap)
				alignments = []align.Alignment{b}
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "cost %d\n", res.Cost); err != nil {
				return err
			}
			for _, al := range alignments {
				if _, err := fmt.Fprintf(out, "%s\n%s\n", al.A, al.B); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().Int("max-ties", align.DefaultMaxTies, "stop after this many tied alignments (0 = all)")
	cmd.Flags().BoolVar(&best, "best", false, "print only the alignment with the fewest gap runs")

	return cmd
}

func newAlignAllCmd(a *app) *cobra.Command {
	var order, withConsensus bool
	cmd := &cobra.Command{
		Use:   "align-all [file]",
		Short: "Fold every line into one aligned block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := a.readLines(cmd, args)
			if err != nil {
				return err
			}
			if len(lines) == 0 {
				return msa.ErrEmptyInput
			}
			if order {
				lines = levenshtein.Reorder(lines)
			}

			table, err := a.table(lines)
			if err != nil {
				return err
			}

			block, err := msa.AlignAll(lines, table,
				msa.WithGapOpen(a.cfg.GapOpen), msa.WithGapSkew(a.cfg.GapSkew))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, row := range block {
				if _, err := fmt.Fprintln(out, row); err != nil {
					return err
				}
			}
			if withConsensus {
				line, err := consensus.Build(block, msa.DefaultGap)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "\n%s\n", line); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().String("table", "", "substitution table YAML (default: uniform over the input)")
	cmd.Flags().BoolVar(&order, "order", false, "reorder lines closest-first before aligning")
	cmd.Flags().BoolVar(&withConsensus, "consensus", false, "also print the column-majority line")

	return cmd
}

// prepare applies --fold to a single argument.
func (a *app) prepare(s string) string {
	if a.cfg.Fold {
		return textnorm.Fold(s)
	}

	return s
}

// readLines reads the named file, or stdin when no file is given.
func (a *app) readLines(cmd *cobra.Command, args []string) ([]string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	lines, err := textnorm.Lines(r)
	if err != nil {
		return nil, err
	}
	if a.cfg.Fold {
		lines = textnorm.FoldAll(lines)
	}
	glog.V(1).Infof("read %d lines", len(lines))

	return lines, nil
}

// table loads the configured substitution table, or falls back to a uniform
// one over the runes of lines.
func (a *app) table(lines []string) (*subst.Table, error) {
	alphabet := lo.Uniq([]rune(strings.Join(lines, "")))

	if a.cfg.Table == "" {
		glog.Warningf("no substitution table configured, scoring matches 1 and mismatches -1")

		return subst.Uniform(string(alphabet), 1, -1), nil
	}

	table, err := subst.LoadFile(a.cfg.Table)
	if err != nil {
		return nil, err
	}
	if missing := table.Covers(alphabet); len(missing) > 0 {
		glog.Warningf("table %s has no score for %d pairs, e.g. %s", a.cfg.Table, len(missing), missing[0])
	}

	return table, nil
}
