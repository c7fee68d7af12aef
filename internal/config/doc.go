// Package config provides configuration management for agentdocs.
//
// Every literal the generator and tag validator depend on (directory names,
// the manifest file name, marker comments, the skills placeholder, the agents
// section anchor and the allowed tag set) has a default in [Default]. A
// repository may override any of them with a `.agentdocs.yaml` file in its
// root; a user-wide `config.yaml` in [paths.ConfigDir] is used when the
// repository has none. Environment variables prefixed with AGENTDOCS_ take
// precedence over both (nested keys use underscores, e.g.
// AGENTDOCS_SKILLS_START_MARKER).
//
// # Configuration File
//
//	manifest: AGENTS.md
//	skills_dir: skills
//	agents_dir: agents
//	allowed_tags: [fe, op, qa, sec]
//	skills:
//	  start_marker: "<!-- SKILLS_TABLE:START -->"
//	  end_marker: "<!-- SKILLS_TABLE:END -->"
//	  placeholder: "Context | Read this file"
//	agents:
//	  start_marker: "<!-- AGENTS_TABLE:START -->"
//	  end_marker: "<!-- AGENTS_TABLE:END -->"
//	  title: "# Agents (Auto-load based on context)"
//	  intro: "Use these subagents for specialized, read-only analysis workflows."
//	  anchor: "# How to use skills"
//
// A loaded [Config] is validated and never mutated afterwards.
package config
