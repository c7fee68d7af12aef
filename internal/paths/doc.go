// Package paths resolves the repository layout agentdocs operates on and the
// user-level configuration directory.
//
// A repository is described by a [Layout]: an absolute root plus the skills
// directory, the agents directory and the manifest file beneath it. All
// derived paths are absolute; [Layout.Rel] turns any of them back into a
// forward-slash path relative to the root for display and table output.
//
// # XDG Base Directory Compliance
//
// [ConfigDir] wraps github.com/adrg/xdg so the user configuration file lives
// at $XDG_CONFIG_HOME/agentdocs on Linux and the platform equivalent
// elsewhere. AGENTDOCS_CONFIG_DIR overrides the location, which keeps tests
// hermetic.
package paths
