// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/homalg/internal/complexfile"
)

func newHomologyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homology FILE",
		Short: "Compute the homology groups of a complex.",
		Long: "Compute H_i for every degree of the complex in FILE (YAML or TOML).\n" +
			"A filtration document is reduced to its final stage.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			doc, err := complexfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			sc, err := doc.Complex()
			if err != nil {
				return err
			}
			s.logger.WithField("cells", sc.Size()).Debug("homalg: complex loaded")

			generators, _ := cmd.Flags().GetBool("generators")
			report, err := s.homologyReport(cmd.Context(), sc, generators)
			if err != nil {
				return err
			}
			s.println(report)

			return nil
		},
	}
	cmd.Flags().BoolP("generators", "g", false, "list a representing cycle for every summand")

	return cmd
}
