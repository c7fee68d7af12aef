package config

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrEmptyValue indicates a required literal is empty.
	ErrEmptyValue = errors.New("must not be empty")

	// ErrSameMarkers indicates a region's start and end markers are equal.
	ErrSameMarkers = errors.New("start and end markers must differ")

	// ErrInvalidTag indicates an allowed tag that can never match a folder name.
	ErrInvalidTag = errors.New("invalid tag")
)

// FieldError reports a validation failure for one configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	for _, p := range []struct{ field, value string }{
		{"manifest", cfg.Manifest},
		{"skills_dir", cfg.SkillsDir},
		{"agents_dir", cfg.AgentsDir},
	} {
		if err := paths.ValidateSubpath(p.value); err != nil {
			errs = append(errs, &FieldError{Field: p.field, Value: p.value, Err: err})
		}
	}

	required := []struct{ field, value string }{
		{"skills.start_marker", cfg.Skills.StartMarker},
		{"skills.end_marker", cfg.Skills.EndMarker},
		{"skills.placeholder", cfg.Skills.Placeholder},
		{"agents.start_marker", cfg.Agents.StartMarker},
		{"agents.end_marker", cfg.Agents.EndMarker},
		{"agents.title", cfg.Agents.Title},
		{"agents.anchor", cfg.Agents.Anchor},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &FieldError{Field: r.field, Err: ErrEmptyValue})
		}
	}

	if cfg.Skills.StartMarker != "" && cfg.Skills.StartMarker == cfg.Skills.EndMarker {
		errs = append(errs, &FieldError{Field: "skills", Value: cfg.Skills.StartMarker, Err: ErrSameMarkers})
	}
	if cfg.Agents.StartMarker != "" && cfg.Agents.StartMarker == cfg.Agents.EndMarker {
		errs = append(errs, &FieldError{Field: "agents", Value: cfg.Agents.StartMarker, Err: ErrSameMarkers})
	}

	if len(cfg.AllowedTags) == 0 {
		errs = append(errs, &FieldError{Field: "allowed_tags", Err: ErrEmptyValue})
	}
	for _, tag := range cfg.AllowedTags {
		if tag == "" || strings.Contains(tag, "-") || strings.TrimSpace(tag) != tag {
			errs = append(errs, &FieldError{Field: "allowed_tags", Value: tag, Err: ErrInvalidTag})
		}
	}

	return errs
}
