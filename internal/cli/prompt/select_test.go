package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/agentdocs/internal/errors"
)

var items = []Item{
	{ID: "alpha", Selected: true},
	{ID: "beta"},
	{ID: "gamma", Selected: true},
}

func TestSelectMany_EmptyList(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)

	_, err := s.SelectMany("pick", nil)
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("SelectMany() error = %v, want ErrNoItems", err)
	}
}

func TestSelectMany_Numbered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"keep current", "\n", []string{"alpha", "gamma"}},
		{"explicit list", "2,3\n", []string{"beta", "gamma"}},
		{"spaces and order", "3 1\n", []string{"alpha", "gamma"}},
		{"all", "all\n", []string{"alpha", "beta", "gamma"}},
		{"none", "none\n", []string{}},
		{"no trailing newline", "2", []string{"beta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			s := NewSelectorWithIO(strings.NewReader(tt.input), &buf)
			got, err := s.SelectMany("pick", items)
			if err != nil {
				t.Fatalf("SelectMany() error = %v", err)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("SelectMany() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectMany_ShowsCurrentSelection(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader("\n"), &buf)
	if _, err := s.SelectMany("Active skills", items); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"Active skills", "[x] 1) alpha", "[ ] 2) beta", "[x] 3) gamma"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSelectMany_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"4\n", "0\n", "abc\n"} {
		var buf bytes.Buffer
		s := NewSelectorWithIO(strings.NewReader(input), &buf)
		_, err := s.SelectMany("pick", items)
		if !errors.Is(err, ErrInvalidSelection) {
			t.Errorf("SelectMany(%q) error = %v, want ErrInvalidSelection", input, err)
		}
	}
}

func TestSelectMany_EOF(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSelectorWithIO(strings.NewReader(""), &buf)
	_, err := s.SelectMany("pick", items)
	if !errors.Is(err, ErrSelectionCancelled) {
		t.Errorf("SelectMany() error = %v, want ErrSelectionCancelled", err)
	}
}

func TestSelectMany_Fuzzy(t *testing.T) {
	prev := finder
	t.Cleanup(func() { finder = prev })

	t.Run("returns picks in list order", func(t *testing.T) {
		finder = func(items []Item, header string) ([]int, error) {
			return []int{2, 1}, nil
		}
		s := &Selector{fuzzy: true}
		got, err := s.SelectMany("pick", items)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Join(got, ",") != "beta,gamma" {
			t.Errorf("SelectMany() = %v, want [beta gamma]", got)
		}
	})

	t.Run("abort cancels", func(t *testing.T) {
		finder = func(items []Item, header string) ([]int, error) {
			return nil, fuzzyfinder.ErrAbort
		}
		s := &Selector{fuzzy: true}
		_, err := s.SelectMany("pick", items)
		if !errors.Is(err, ErrSelectionCancelled) {
			t.Errorf("SelectMany() error = %v, want ErrSelectionCancelled", err)
		}
	})
}
