package cli

import (
	"github.com/spf13/cobra"

	"github.com/turtacn/MedText-Intelligence/internal/intelligence/knowledge"
	"github.com/turtacn/MedText-Intelligence/pkg/errors"
)

func newGraphCmd(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Inspect the medical knowledge graph",
	}
	cmd.AddCommand(newGraphQueryCmd(deps), newGraphSimilarityCmd(deps), newGraphStatsCmd(deps))
	return cmd
}

func newGraphQueryCmd(deps Deps) *cobra.Command {
	var (
		depth    int
		pathways bool
		domain   string
	)

	cmd := &cobra.Command{
		Use:   "query <concept>",
		Short: "Traverse the graph from a concept name or alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := knowledge.QueryOptions{
				MaxDepth:        depth,
				IncludePathways: pathways,
			}
			if domain != "" {
				opts.Domains = []knowledge.MedicalDomain{knowledge.MedicalDomain(domain)}
			}
			result := deps.Graph.Query(args[0], opts)
			if len(result.Concepts) == 0 {
				return errors.New(errors.ErrCodeConceptNotFound,
					"medical concept not found").WithDetail("concept=" + args[0])
			}
			return printJSON(cmd, result)
		},
	}
	cmd.Flags().IntVar(&depth, "depth", 1, "traversal depth")
	cmd.Flags().BoolVar(&pathways, "pathways", false, "include clinical pathways")
	cmd.Flags().StringVar(&domain, "domain", "", "restrict to one medical domain")
	return cmd
}

func newGraphSimilarityCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <concept-a> <concept-b>",
		Short: "Score the structural similarity of two concepts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := deps.Graph.Similarity(args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, score)
		},
	}
}

func newGraphStatsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph-wide counts and averages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd, deps.Graph.Stats())
		},
	}
}

//Personal.AI order the ending
