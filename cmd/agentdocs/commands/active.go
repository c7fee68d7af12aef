package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/agentdocs/internal/allowlist"
	"github.com/thoreinstein/agentdocs/internal/catalog"
	"github.com/thoreinstein/agentdocs/internal/cli/prompt"
	"github.com/thoreinstein/agentdocs/internal/editor"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/pkg/frontmatter"
)

// newSelector builds the selection prompt; replaced in tests.
var newSelector = func(*cobra.Command) *prompt.Selector {
	return prompt.NewSelector()
}

// source pairs a catalog kind with its directory.
type source struct {
	kind catalog.Kind
	dir  string
	rel  string
}

func (s source) allowListPath() string {
	return filepath.Join(s.dir, s.kind.AllowListFile)
}

func (a *app) source(name string) (source, error) {
	l, err := a.layout()
	if err != nil {
		return source{}, err
	}
	switch name {
	case "skills":
		return source{kind: catalog.Skills, dir: l.Skills, rel: l.Rel(l.Skills)}, nil
	case "agents":
		return source{kind: catalog.Agents, dir: l.Agents, rel: l.Rel(l.Agents)}, nil
	default:
		return source{}, errors.NewUserError(errors.Newf("unknown source %q", name), "Use skills or agents")
	}
}

func newActiveCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "active",
		Short: "Manage the allow-lists that limit generated tables",
		Long: `Manage ACTIVE_SKILLS.txt and ACTIVE_AGENTS.txt.

When an allow-list file exists, only the identifiers it lists (one per line,
# starts a comment) appear in the generated tables. Without the file every
entry is included. An existing but empty file includes nothing.`,
		Example: `  # Show active skills
  agentdocs active list skills

  # Choose active agents interactively
  agentdocs active select agents

  See Also: agentdocs generate`,
	}
	c.AddCommand(newActiveListCmd(a), newActiveSelectCmd(a), newActiveEditCmd(a))
	return c
}

var sourceArgs = []string{"skills", "agents"}

func newActiveListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "list <skills|agents>",
		Short:     "Print the active allow-list",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: sourceArgs,
		RunE: func(c *cobra.Command, args []string) error {
			src, err := a.source(args[0])
			if err != nil {
				return err
			}
			list, err := allowlist.Load(src.allowListPath())
			if err != nil {
				return errors.NewSystemError(err, "")
			}

			out := c.OutOrStdout()
			if list == nil {
				fmt.Fprintf(out, "no allow-list (%s/%s): all entries included\n", src.rel, src.kind.AllowListFile)
				return nil
			}

			cands, err := catalog.Discover(src.kind, src.dir)
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			missing := make(map[string]bool)
			for _, id := range list.Missing(catalog.IDs(cands)) {
				missing[id] = true
			}

			for _, id := range list.Items() {
				if missing[id] {
					fmt.Fprintf(out, "%s (not found under %s/)\n", id, src.rel)
					continue
				}
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}
}

func newActiveSelectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "select <skills|agents>",
		Short:     "Choose active entries interactively",
		Long:      "Choose active entries from the discovered files and write the allow-list.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: sourceArgs,
		RunE: func(c *cobra.Command, args []string) error {
			src, err := a.source(args[0])
			if err != nil {
				return err
			}
			list, err := allowlist.Load(src.allowListPath())
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			cands, err := catalog.Discover(src.kind, src.dir)
			if err != nil {
				return errors.NewSystemError(err, "")
			}

			items := make([]prompt.Item, 0, len(cands))
			for _, cand := range cands {
				meta, err := frontmatter.ParseFile(filepath.Join(src.dir, filepath.FromSlash(cand.Rel)))
				if err != nil {
					return errors.NewSystemError(err, "")
				}
				items = append(items, prompt.Item{
					ID:          cand.ID,
					Description: meta.Get(catalog.KeyDescription),
					Selected:    list.Contains(cand.ID),
				})
			}

			ids, err := newSelector(c).SelectMany("Active "+args[0]+":", items)
			if err != nil {
				if errors.Is(err, prompt.ErrSelectionCancelled) {
					fmt.Fprintln(c.ErrOrStderr(), "selection cancelled; nothing written")
					return nil
				}
				return errors.NewUserError(err, "")
			}

			header := []string{
				fmt.Sprintf("Active %s for agentdocs generate, one per line.", args[0]),
				"Delete this file to include every entry.",
			}
			if err := allowlist.Write(src.allowListPath(), ids, header...); err != nil {
				return errors.NewSystemError(err, "")
			}
			fmt.Fprintf(c.OutOrStdout(), "Wrote %d of %d %s to %s/%s\n",
				len(ids), len(items), args[0], src.rel, src.kind.AllowListFile)
			return nil
		},
	}
}

func newActiveEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <skills|agents>",
		Short: "Open the allow-list in $EDITOR",
		Long: `Open the allow-list in $EDITOR.

If the file does not exist yet it is created listing every discovered entry.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: sourceArgs,
		RunE: func(c *cobra.Command, args []string) error {
			src, err := a.source(args[0])
			if err != nil {
				return err
			}
			path := src.allowListPath()

			list, err := allowlist.Load(path)
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			if list == nil {
				cands, err := catalog.Discover(src.kind, src.dir)
				if err != nil {
					return errors.NewSystemError(err, "")
				}
				header := fmt.Sprintf("Active %s for agentdocs generate, one per line.", args[0])
				if err := allowlist.Write(path, catalog.IDs(cands), header); err != nil {
					return errors.NewSystemError(err, "")
				}
			}

			ed := &editor.Editor{In: c.InOrStdin(), Out: c.OutOrStdout(), Err: c.ErrOrStderr()}
			if err := ed.Open(c.Context(), path); err != nil {
				return errors.NewSystemError(err, "Set $EDITOR to an installed editor")
			}
			return nil
		},
	}
}
