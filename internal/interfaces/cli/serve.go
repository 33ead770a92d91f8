package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

func newServeCmd(deps Deps) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the analysis API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if deps.ServeFunc == nil {
				return errors.New(errors.ErrCodeNotImplemented, "serve is not available in this build")
			}
			return deps.ServeFunc(cmd.Context(), configFile)
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "path to the configuration file")
	return cmd
}

//Personal.AI order the ending
