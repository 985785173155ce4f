// SPDX-License-Identifier: MIT
// Package: cli
//
// synth.go — the synth command.

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/connectome/builder"
	"github.com/katalvlaran/connectome/loader"
)

type synthParams struct {
	k, extra, edges int
}

// synthKinds maps each synth argument to its constructor.
var synthKinds = map[string]func(p synthParams) builder.Constructor{
	"ring":       func(synthParams) builder.Constructor { return builder.Ring() },
	"complete":   func(synthParams) builder.Constructor { return builder.Complete() },
	"lattice":    func(p synthParams) builder.Constructor { return builder.RingLattice(p.k) },
	"smallworld": func(p synthParams) builder.Constructor { return builder.SmallWorld(p.k, p.extra) },
	"random":     func(p synthParams) builder.Constructor { return builder.RandomEdges(p.edges) },
}

func synthKindNames() string {
	names := make([]string, 0, len(synthKinds))
	for name := range synthKinds {
		names = append(names, name)
	}
	sort.Strings(names)

	return strings.Join(names, "|")
}

func (a *app) synthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "synth <" + synthKindNames() + ">",
		Short: "Write a synthetic connectome matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := synthKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown graph kind %q (want %s)", args[0], synthKindNames())
			}
			f := cmd.Flags()
			n, _ := f.GetInt("nodes")
			var p synthParams
			p.k, _ = f.GetInt("k")
			p.extra, _ = f.GetInt("extra")
			p.edges, _ = f.GetInt("edges")
			lo, _ := f.GetFloat64("min-weight")
			hi, _ := f.GetFloat64("max-weight")
			out, _ := f.GetString("out")

			if !(lo > 0) || hi < lo {
				return fmt.Errorf("need 0 < min-weight ≤ max-weight, got %g and %g", lo, hi)
			}
			delim, err := loader.ParseDelimiter(a.cfg.Delimiter)
			if err != nil {
				return err
			}

			m, err := builder.Build(n, []builder.Constructor{kind(p)},
				builder.WithSeed(a.cfg.Seed),
				builder.WithWeightFn(builder.UniformWeightFn(lo, hi)),
			)
			if err != nil {
				return err
			}
			a.logger.Info("built synthetic connectome", "kind", args[0], "nodes", n, "seed", a.cfg.Seed)

			if out == "" || out == "-" {
				return loader.Write(cmd.OutOrStdout(), m, delim)
			}

			return loader.Save(out, m, delim)
		},
	}

	f := cmd.Flags()
	f.Int("nodes", 20, "number of nodes")
	f.Int("k", 2, "lattice neighbors on each side (lattice, smallworld)")
	f.Int("extra", 5, "random chords added to the lattice (smallworld)")
	f.Int("edges", 40, "random edges (random)")
	f.Float64("min-weight", 1, "smallest edge weight")
	f.Float64("max-weight", 1, "largest edge weight")
	f.String("out", "-", "output file, - for stdout")

	return cmd
}
