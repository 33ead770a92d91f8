package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/corrections"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

func newCorrectCmd(deps Deps) *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "correct [text]",
		Short: "Apply the transcription correction tables to text",
		Long: "Rewrites common speech-recognition errors in clinical text. " +
			"Text comes from the arguments or stdin; the corrected text goes to stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}

			wanted := make([]corrections.Category, 0, len(categories))
			for _, name := range categories {
				category := corrections.Category(name)
				if !category.IsValid() {
					return errors.New(errors.ErrCodeCategoryUnknown,
						"unknown correction category").WithDetail("category=" + name)
				}
				wanted = append(wanted, category)
			}

			corrected, err := deps.Service.CorrectText(cmd.Context(), text, wanted...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), corrected)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "categories", nil,
		"correction categories to apply (default: all)")
	return cmd
}

//Personal.AI order the ending
