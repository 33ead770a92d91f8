package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/internal/application/analysis"
)

func newAnalyzeCmd(deps Deps) *cobra.Command {
	var (
		australian     bool
		withValidation bool
		minConfidence  float64
		graphDepth     int
	)

	cmd := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Run the full analysis pipeline and print the report as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			report, err := deps.Service.AnalyzeClinicalReasoning(cmd.Context(), text, analysis.Options{
				AustralianFocus:   australian,
				MinConfidence:     minConfidence,
				GraphDepth:        graphDepth,
				IncludeValidation: withValidation,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	cmd.Flags().BoolVar(&australian, "australian", true, "apply Australian terminology conventions")
	cmd.Flags().BoolVar(&withValidation, "validate", false, "attach a full validation result")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "override the reasoning retention threshold")
	cmd.Flags().IntVar(&graphDepth, "graph-depth", 0, "knowledge graph enrichment depth (0 = default)")
	return cmd
}

//Personal.AI order the ending
