package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ExitError
		want string
	}{
		{
			name: "with underlying error",
			err:  NewExitError(ErrMissingTarget, ExitUser),
			want: "target manifest not found",
		},
		{
			name: "with wrapped error",
			err:  NewExitError(fmt.Errorf("loading config: %w", ErrInvalidConfig), ExitUser),
			want: "loading config: invalid configuration",
		},
		{
			name: "nil underlying error",
			err:  NewExitError(nil, ExitUser),
			want: "exit code 1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ExitError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	tests := []struct {
		name       string
		err        *ExitError
		wantTarget error
		wantIs     bool
	}{
		{
			name:       "unwrap to sentinel error",
			err:        NewExitError(ErrAnchorNotFound, ExitUser),
			wantTarget: ErrAnchorNotFound,
			wantIs:     true,
		},
		{
			name:       "unwrap through cockroach wrap",
			err:        NewExitError(Wrap(ErrMissingDirectory, "skills"), ExitUser),
			wantTarget: ErrMissingDirectory,
			wantIs:     true,
		},
		{
			name:       "no match for different sentinel",
			err:        NewExitError(ErrNotFound, ExitUser),
			wantTarget: ErrInvalidConfig,
			wantIs:     false,
		},
		{
			name:       "nil underlying error",
			err:        NewExitError(nil, ExitUser),
			wantTarget: ErrNotFound,
			wantIs:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.wantTarget); got != tt.wantIs {
				t.Errorf("Is() = %v, want %v", got, tt.wantIs)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"explicit exit error", NewSystemError(errors.New("disk"), ""), ExitSystem},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewUserError(errors.New("bad"), "")), ExitUser},
		{"missing directory", Wrapf(ErrMissingDirectory, "skills directory %s", "/x/skills"), ExitUser},
		{"missing target", ErrMissingTarget, ExitUser},
		{"anchor", Wrap(ErrAnchorNotFound, "agents table"), ExitUser},
		{"untagged", ErrUntagged, ExitUser},
		{"out of date", ErrOutOfDate, ExitUser},
		{"plain io error", errors.New("permission denied"), ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSuggestion(t *testing.T) {
	err := Wrap(NewUserError(ErrMissingTarget, "Create AGENTS.md first"), "generate")
	if got := Suggestion(err); got != "Create AGENTS.md first" {
		t.Errorf("Suggestion() = %q", got)
	}
	if got := Suggestion(ErrMissingTarget); got != "" {
		t.Errorf("Suggestion() on bare sentinel = %q, want empty", got)
	}
}

func TestExitError_As(t *testing.T) {
	err := fmt.Errorf("command failed: %w", NewConfigError(ErrInvalidConfig))
	var exitErr *ExitError
	if !As(err, &exitErr) {
		t.Fatal("As() = false, want true")
	}
	if exitErr.Code != ExitUser {
		t.Errorf("Code = %d, want %d", exitErr.Code, ExitUser)
	}
	if exitErr.Suggestion != "Run: agentdocs config show" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
}

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrNotFound, "resource not found"},
		{ErrInvalidConfig, "invalid configuration"},
		{ErrMissingDirectory, "directory not found"},
		{ErrMissingTarget, "target manifest not found"},
		{ErrAnchorNotFound, "insertion anchor not found"},
		{ErrUntagged, "untagged skills found"},
		{ErrOutOfDate, "manifest is out of date"},
	}
	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestErrorWrappingChain(t *testing.T) {
	wrappedOnce := Wrap(ErrAnchorNotFound, "injecting skills table")
	wrappedTwice := fmt.Errorf("updating AGENTS.md: %w", wrappedOnce)
	exitErr := NewExitError(wrappedTwice, ExitUser)

	if !Is(exitErr, ErrAnchorNotFound) {
		t.Error("Is() should find ErrAnchorNotFound through wrapping chain")
	}
	if want := "updating AGENTS.md: injecting skills table: insertion anchor not found"; exitErr.Error() != want {
		t.Errorf("Error() = %q, want %q", exitErr.Error(), want)
	}
}
