// Package logging configures log/slog for agentdocs.
//
// Diagnostics go through slog; user-facing output (summaries, reports,
// warnings about the repository) is written by the commands directly and
// never passes through here.
//
// Text output uses [Handler], a compact single-line format:
//
//	DEBUG collected entries kind=skill discovered=4 included=3 filtered=true
//
// Levels are colored when the destination is a terminal and the color mode
// allows it (see [ColorMode]). JSON output uses slog's own handler. [NewTee]
// fans records out to several handlers, which the CLI uses for --log-file.
//
// The logger travels in the context: the root command stores it with
// [NewContext] and packages read it back with [FromContext]. Tests use
// [ForTest] so that output is attached to the test.
package logging
