// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/homalg/internal/complexfile"
	"github.com/katalvlaran/homalg/internal/config"
)

func newPersistenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persistence FILE",
		Short: "Compute the persistence intervals of a filtration.",
		Long: "Compute birth/death intervals of the filtration in FILE over a field\n" +
			"(Q, Z2, Z3, Z5, Z7 or Fr). A plain complex is a one-stage filtration.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			// Z is the global default; persistence falls back to Q unless asked otherwise.
			if !cmd.Flags().Changed(flagCoefficients) && s.cfg.Coefficients == config.CoeffZ {
				s.cfg.Coefficients = config.CoeffQ
			}
			doc, err := complexfile.ReadFile(args[0])
			if err != nil {
				return err
			}
			f, err := doc.Filtration()
			if err != nil {
				return err
			}
			s.logger.WithField("stages", f.Len()).Debug("homalg: filtration loaded")

			barcode, _ := cmd.Flags().GetBool("barcode")
			report, err := s.persistenceReport(cmd.Context(), f, barcode)
			if err != nil {
				return err
			}
			s.println(report)

			return nil
		},
	}
	cmd.Flags().BoolP("barcode", "b", false, "draw one bar per interval instead of listing generators")

	return cmd
}
