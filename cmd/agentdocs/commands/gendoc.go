package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// newGenDocCmd writes one Markdown page per command. Each page starts with
// name and description front matter so the pages can live in a docs site
// or an agents/ directory.
func newGenDocCmd(root *cobra.Command) *cobra.Command {
	var outputDir string

	c := &cobra.Command{
		Use:    "gen-doc",
		Short:  "Generate Markdown documentation for the CLI",
		Hidden: true,
		Args:   cobra.NoArgs,
		Annotations: map[string]string{
			annotationNoConfig: "true",
		},
		RunE: func(c *cobra.Command, _ []string) error {
			if outputDir == "" {
				return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
			}
			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return errors.NewSystemError(errors.Wrap(err, "creating output directory"), "")
			}

			root.DisableAutoGenTag = true
			if err := doc.GenMarkdownTreeCustom(root, outputDir, filePrepender(root), linkHandler); err != nil {
				return errors.NewSystemError(errors.Wrap(err, "generating markdown"), "")
			}

			fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", outputDir)
			return nil
		},
	}
	c.Flags().StringVarP(&outputDir, "dir", "d", "", "output directory for documentation")
	return c
}

// filePrepender returns front matter for a generated page:
// agentdocs_active_list.md gets name "agentdocs active list".
func filePrepender(root *cobra.Command) func(string) string {
	return func(filename string) string {
		base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		name := strings.ReplaceAll(base, "_", " ")

		short := ""
		args := strings.Fields(name)
		if found, _, err := root.Find(args[1:]); err == nil {
			short = found.Short
		}

		return fmt.Sprintf("---\nname: %s\ndescription: %s\n---\n", name, short)
	}
}

func linkHandler(name string) string {
	return strings.ToLower(name)
}
