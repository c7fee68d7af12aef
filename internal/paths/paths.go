package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

// AppName names the user configuration directory.
const AppName = "agentdocs"

// ConfigDirEnv overrides ConfigDir when set.
const ConfigDirEnv = "AGENTDOCS_CONFIG_DIR"

// ErrInvalidPath indicates a configured subpath escapes the repository root
// or is otherwise malformed.
var ErrInvalidPath = errors.New("invalid path")

// ConfigDir returns the user configuration directory for agentdocs.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Layout is the set of paths the generator reads and writes.
type Layout struct {
	// Root is the absolute repository root.
	Root string
	// Skills is the directory holding one folder per skill.
	Skills string
	// Agents is the directory holding one Markdown file per agent.
	Agents string
	// Manifest is the target document that receives the tables.
	Manifest string
}

// NewLayout resolves root to an absolute path and joins the given subpaths
// beneath it. Subpaths must be relative and stay inside root.
func NewLayout(root, skills, agents, manifest string) (Layout, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, errors.Wrapf(err, "resolving repository root %s", root)
	}

	l := Layout{Root: abs}
	for _, p := range []struct {
		field string
		sub   string
		dst   *string
	}{
		{"skills_dir", skills, &l.Skills},
		{"agents_dir", agents, &l.Agents},
		{"manifest", manifest, &l.Manifest},
	} {
		if err := ValidateSubpath(p.sub); err != nil {
			return Layout{}, errors.Wrapf(err, "%s %q", p.field, p.sub)
		}
		*p.dst = filepath.Join(abs, filepath.FromSlash(p.sub))
	}
	return l, nil
}

// ValidateSubpath checks that sub is a non-empty relative path that does not
// climb out of the directory it is joined to.
func ValidateSubpath(sub string) error {
	if sub == "" || strings.ContainsRune(sub, '\x00') {
		return ErrInvalidPath
	}
	if filepath.IsAbs(sub) || strings.HasPrefix(sub, "/") {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(filepath.FromSlash(sub))
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return ErrInvalidPath
	}
	return nil
}

// Rel returns path relative to the layout root using forward slashes on
// every platform. Paths outside the root are returned unchanged.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
