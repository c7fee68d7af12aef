package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/cmd"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Annotations: map[string]string{
			annotationNoConfig: "true",
		},
		Run: func(c *cobra.Command, _ []string) {
			fmt.Fprintf(c.OutOrStdout(), "agentdocs %s (commit %s, built %s)\n", cmd.Version, cmd.Commit, cmd.Date)
		},
	}
}
