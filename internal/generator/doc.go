// Package generator rebuilds the skills and agents tables in a manifest.
//
// A run is strictly ordered:
//
//	preflight -> collect skills -> collect agents -> render -> inject -> write
//
// Every failure is detected before anything is written, and the manifest is
// replaced with a single atomic write only when its content changes.
package generator
