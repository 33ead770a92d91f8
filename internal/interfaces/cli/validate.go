package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/scoring"
)

func newValidateCmd(deps Deps) *cobra.Command {
	var (
		australian bool
		strict     bool
		quick      bool
	)

	cmd := &cobra.Command{
		Use:   "validate [text]",
		Short: "Validate medical accuracy and print the confidence report",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			if quick {
				fmt.Fprintf(cmd.OutOrStdout(), "%.3f\n", deps.Service.QuickConfidence(cmd.Context(), text))
				return nil
			}

			result, err := deps.Service.ValidateText(cmd.Context(), text, scoring.Config{
				AustralianFocus:   australian,
				StrictTerminology: strict,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().BoolVar(&australian, "australian", true, "run the Australian compliance pass")
	cmd.Flags().BoolVar(&strict, "strict", false, "escalate terminology issues to major")
	cmd.Flags().BoolVar(&quick, "quick", false, "print only the quick confidence estimate")
	return cmd
}

//Personal.AI order the ending
