package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/agentdocs/internal/config"
	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/logging"
	"github.com/thoreinstein/agentdocs/internal/paths"
)

const baseManifest = `# Project

## Skills

<!-- SKILLS_TABLE:START -->
stale
<!-- SKILLS_TABLE:END -->

# How to use skills

Open the file listed for your context.
`

type fixture struct {
	t    *testing.T
	root string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	for _, d := range []string{"skills", "agents"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0o755))
	}
	f := &fixture{t: t, root: root}
	f.write("AGENTS.md", baseManifest)
	return f
}

func (f *fixture) write(rel, content string) {
	f.t.Helper()
	p := filepath.Join(f.root, filepath.FromSlash(rel))
	require.NoError(f.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(f.t, os.WriteFile(p, []byte(content), 0o644))
}

func (f *fixture) read(rel string) string {
	f.t.Helper()
	data, err := os.ReadFile(filepath.Join(f.root, filepath.FromSlash(rel)))
	require.NoError(f.t, err)
	return string(data)
}

func (f *fixture) skill(id, fm string) {
	f.write("skills/"+id+"/SKILL.md", fm)
}

func (f *fixture) agent(id, fm string) {
	f.write("agents/"+id+".md", fm)
}

func (f *fixture) options(mode Mode) Options {
	f.t.Helper()
	cfg := config.Default()
	l, err := paths.NewLayout(f.root, cfg.SkillsDir, cfg.AgentsDir, cfg.Manifest)
	require.NoError(f.t, err)
	return Options{Layout: l, Config: cfg, Mode: mode}
}

func TestRun_WritesTables(t *testing.T) {
	f := newFixture(t)
	f.skill("op-deploy", "---\nname: Deploy\ndescription: Ships it\n---\nbody\n")
	f.skill("alpha", "no front matter\n")
	f.agent("reviewer", "---\ndescription: Reads a | b\n---\n")

	sum, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Skills)
	assert.Equal(t, 1, sum.Agents)
	assert.True(t, sum.Changed)
	assert.True(t, sum.Written)
	assert.Equal(t, "Updated AGENTS.md with 2 skills and 1 agents.", sum.Line())

	got := f.read("AGENTS.md")
	assert.Contains(t, got, "<!-- SKILLS_TABLE:START -->\n"+
		"| Context | Read this file | Description |\n"+
		"| --- | --- | --- |\n"+
		"| `alpha` | `skills/alpha/SKILL.md` |  |\n"+
		"| `Deploy` | `skills/op-deploy/SKILL.md` | Ships it |\n"+
		"<!-- SKILLS_TABLE:END -->")
	assert.NotContains(t, got, "stale")
	assert.Contains(t, got, "| `reviewer` | `agents/reviewer.md` | Reads a \\| b |")
	assert.Less(t, strings.Index(got, "<!-- AGENTS_TABLE:END -->"), strings.Index(got, "# How to use skills"))
}

func TestRun_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.skill("qa-smoke", "---\nname: smoke\n---\n")
	f.agent("planner", "")

	g := New(logging.ForTest(t))
	_, err := g.Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)
	first := f.read("AGENTS.md")

	sum, err := g.Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)
	assert.False(t, sum.Changed)
	assert.False(t, sum.Written)
	assert.Empty(t, sum.Diff)
	assert.Equal(t, first, f.read("AGENTS.md"))
	assert.Equal(t, "Updated AGENTS.md with 1 skills and 1 agents.", sum.Line())

	sum, err = g.Run(t.Context(), f.options(ModeCheck))
	require.NoError(t, err)
	assert.Equal(t, "AGENTS.md is up to date with 1 skills and 1 agents.", sum.Line())
}

func TestRun_AllowListDrift(t *testing.T) {
	f := newFixture(t)
	f.skill("a", "")
	f.skill("b", "")
	f.write("skills/ACTIVE_SKILLS.txt", "a\nghost\n")

	sum, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Skills)
	assert.Equal(t, []string{"ghost"}, sum.SkillDrift)
	assert.Empty(t, sum.AgentDrift)
	assert.NotContains(t, f.read("AGENTS.md"), "skills/b/SKILL.md")
}

func TestRun_AnchorMissingLeavesFileUntouched(t *testing.T) {
	f := newFixture(t)
	doc := "# Project\n\n<!-- SKILLS_TABLE:START -->\n<!-- SKILLS_TABLE:END -->\n"
	f.write("AGENTS.md", doc)
	f.agent("planner", "")

	_, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAnchorNotFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Equal(t, doc, f.read("AGENTS.md"))
}

func TestRun_Placeholder(t *testing.T) {
	f := newFixture(t)
	f.write("AGENTS.md", "# Skills\n\nContext | Read this file\n\n# How to use skills\n")
	f.skill("fe-forms", "")

	_, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)

	got := f.read("AGENTS.md")
	assert.Equal(t, 1, strings.Count(got, "<!-- SKILLS_TABLE:START -->"))
	assert.Contains(t, got, "| `fe-forms` | `skills/fe-forms/SKILL.md` |  |")
}

func TestRun_CheckMode(t *testing.T) {
	f := newFixture(t)
	f.skill("op-deploy", "")

	sum, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeCheck))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrOutOfDate))
	require.NotNil(t, sum)
	assert.True(t, sum.Changed)
	assert.False(t, sum.Written)
	assert.Equal(t, "AGENTS.md is out of date.", sum.Line())
	assert.Equal(t, baseManifest, f.read("AGENTS.md"))

	_, err = New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.NoError(t, err)
	_, err = New(logging.ForTest(t)).Run(t.Context(), f.options(ModeCheck))
	assert.NoError(t, err)
}

func TestRun_DryRun(t *testing.T) {
	f := newFixture(t)
	f.skill("sec-audit", "---\ndescription: Audits\n---\n")

	sum, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeDryRun))
	require.NoError(t, err)
	assert.True(t, sum.Changed)
	assert.False(t, sum.Written)
	assert.Equal(t, "Would update AGENTS.md with 1 skills and 0 agents.", sum.Line())
	assert.Contains(t, sum.Diff, "--- a/AGENTS.md")
	assert.Contains(t, sum.Diff, "+++ b/AGENTS.md")
	assert.Contains(t, sum.Diff, "-stale")
	assert.Contains(t, sum.Diff, "+| `sec-audit` | `skills/sec-audit/SKILL.md` | Audits |")
	assert.Equal(t, baseManifest, f.read("AGENTS.md"))
}

func TestPreflight(t *testing.T) {
	cfg := config.Default()

	t.Run("all present", func(t *testing.T) {
		f := newFixture(t)
		l, err := paths.NewLayout(f.root, cfg.SkillsDir, cfg.AgentsDir, cfg.Manifest)
		require.NoError(t, err)
		assert.NoError(t, Preflight(l))
	})

	t.Run("missing manifest", func(t *testing.T) {
		f := newFixture(t)
		require.NoError(t, os.Remove(filepath.Join(f.root, "AGENTS.md")))
		l, err := paths.NewLayout(f.root, cfg.SkillsDir, cfg.AgentsDir, cfg.Manifest)
		require.NoError(t, err)

		err = Preflight(l)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrMissingTarget))
		assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	})

	t.Run("everything missing is reported at once", func(t *testing.T) {
		l, err := paths.NewLayout(t.TempDir(), cfg.SkillsDir, cfg.AgentsDir, cfg.Manifest)
		require.NoError(t, err)

		err = Preflight(l)
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		require.Len(t, merr.Errors, 3)
		assert.True(t, errors.Is(merr.Errors[0], errors.ErrMissingDirectory))
		assert.True(t, errors.Is(merr.Errors[1], errors.ErrMissingDirectory))
		assert.True(t, errors.Is(merr.Errors[2], errors.ErrMissingTarget))
		assert.Contains(t, err.Error(), "3 preflight checks failed")
		assert.Contains(t, err.Error(), "skills directory skills")
	})
}

func TestRun_MissingInputsDoNotWrite(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(filepath.Join(f.root, "agents")))

	_, err := New(logging.ForTest(t)).Run(t.Context(), f.options(ModeWrite))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingDirectory))
	assert.Equal(t, baseManifest, f.read("AGENTS.md"))
}

func TestRun_Canceled(t *testing.T) {
	f := newFixture(t)
	f.skill("a", "")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := New(logging.ForTest(t)).Run(ctx, f.options(ModeWrite))
	require.Error(t, err)
	assert.Equal(t, baseManifest, f.read("AGENTS.md"))
}
