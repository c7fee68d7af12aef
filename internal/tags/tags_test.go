package tags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

func TestPolicy_IsTagged(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		name string
		want bool
	}{
		{"op-deploy", true},
		{"sec-audit", true},
		{"fe-forms", true},
		{"qa-smoke", true},
		{"op-deploy-prod", true},
		{"scratch", false},
		{"ops-deploy", false},
		{"op", false},
		{"-op", false},
		{"OP-deploy", false},
		{"op-", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.IsTagged(tt.name))
		})
	}
}

func TestPolicy_Custom(t *testing.T) {
	p := NewPolicy("ml")
	assert.True(t, p.IsTagged("ml-train"))
	assert.False(t, p.IsTagged("op-deploy"))
	assert.Equal(t, []string{"ml"}, p.Tags())
}

func TestClassify_PreservesOrder(t *testing.T) {
	r := DefaultPolicy().Classify([]string{"a", "op-x", "b", "qa-y"})
	assert.Equal(t, 4, r.Checked)
	assert.Equal(t, []string{"op-x", "qa-y"}, r.Tagged)
	assert.Equal(t, []string{"a", "b"}, r.Untagged)
}

func makeSkills(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, n), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, n, "SKILL.md"), []byte("---\n---\n"), 0o644))
	}
	return dir
}

func TestScan(t *testing.T) {
	dir := makeSkills(t, "scratch", "op-deploy")
	// A folder without SKILL.md is not a skill.
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "notes"), 0o755))

	r, err := Scan(dir, DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 2, r.Checked)
	assert.Equal(t, []string{"op-deploy"}, r.Tagged)
	assert.Equal(t, []string{"scratch"}, r.Untagged)

	assert.NoError(t, r.Err(false))

	err = r.Err(true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUntagged))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Equal(t, "untagged skills found with --strict-untagged. Rename or explicitly accept them.", err.Error())
}

func TestScan_MissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "skills"), DefaultPolicy())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrMissingDirectory))
}

func TestScan_Empty(t *testing.T) {
	r, err := Scan(t.TempDir(), DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 0, r.Checked)
	assert.NoError(t, r.Err(true))
}
