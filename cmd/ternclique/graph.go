// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/ternclique/compat"
	"github.com/katalvlaran/ternclique/config"
	"github.com/katalvlaran/ternclique/dictfile"
)

// newGraphCmd inspects the compatibility graph of an input without
// extracting a cover.
func newGraphCmd(a *app) *cobra.Command {
	var matrix bool
	cmd := &cobra.Command{
		Use:   "graph <input_file> <vector_length>",
		Short: "Print compatibility graph statistics (and optionally the adjacency matrix)",
		Long: `Loads the input exactly like the root command and reports the size of the
pairwise compatibility graph. The number of connected components is a lower
bound on the dictionary size needed to cover every vector.

With --matrix the dense 0/1 adjacency matrix is printed as well; it has one
line per vector, so use it on small inputs only.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("%w: %q is not an integer", config.ErrInvalidLength, args[1])
			}
			a.cfg.VectorLength = length
			if err = a.cfg.Validate(); err != nil {
				return err
			}
			policy, _ := a.cfg.PolicyValue()

			set, st, err := dictfile.ReadFile(args[0], length,
				dictfile.WithPolicy(policy), dictfile.WithLogger(a.logger))
			if err != nil {
				return err
			}
			g, err := compat.Build(set, compat.WithContext(cmd.Context()), compat.WithWorkers(a.cfg.Workers))
			if err != nil {
				return err
			}
			s := g.Summary()
			a.logger.Debug("graph summary", zap.Int("vertices", s.Vertices), zap.Int("edges", s.Edges))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "vectors:    %d (skipped %d)\n", s.Vertices, st.Skipped)
			fmt.Fprintf(out, "edges:      %d\n", s.Edges)
			fmt.Fprintf(out, "components: %d\n", s.Components)
			fmt.Fprintf(out, "isolated:   %d\n", s.Isolated)
			fmt.Fprintf(out, "max degree: %d\n", s.MaxDegree)
			if matrix {
				return g.WriteMatrix(out)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&matrix, "matrix", false, "also print the adjacency matrix")

	return cmd
}
