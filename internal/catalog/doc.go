// Package catalog discovers skill and agent description files and turns them
// into sorted table entries.
//
// A [Kind] describes one source directory layout:
//
//	skills/<id>/SKILL.md   identifier = folder name
//	agents/<id>.md         identifier = file stem
//
// [Collector.Collect] applies the optional allow-list stored next to the
// sources (ACTIVE_SKILLS.txt, ACTIVE_AGENTS.txt), reads each file's front
// matter, and returns entries sorted case-insensitively by display name.
// Identifiers named by the allow-list but absent on disk are reported as
// drift in the [Result]; drift never fails a collection.
package catalog
