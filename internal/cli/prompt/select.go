// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/agentdocs/internal/errors"
	"github.com/thoreinstein/agentdocs/internal/logging"
)

// Sentinel errors for selection.
var (
	ErrNoItems            = errors.New("nothing to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// Item is one selectable entry.
type Item struct {
	ID          string
	Description string
	// Selected marks the item as chosen before the prompt opens.
	Selected bool
}

// finder is the fuzzy multi-select; replaced in tests.
var finder = func(items []Item, header string) ([]int, error) {
	return fuzzyfinder.FindMulti(
		items,
		func(i int) string { return items[i].ID },
		fuzzyfinder.WithHeader(header),
		fuzzyfinder.WithPreselected(func(i int) bool { return items[i].Selected }),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return fmt.Sprintf("%s\n\n%s", items[i].ID, items[i].Description)
		}),
	)
}

// Selector handles interactive selection prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
	// fuzzy uses the full-screen finder instead of the numbered prompt.
	fuzzy bool
}

// NewSelector creates a Selector on stdin and stdout. The full-screen finder
// is used when stdout is a terminal.
func NewSelector() *Selector {
	return &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
		fuzzy:  logging.IsTTY(os.Stdout),
	}
}

// NewSelectorWithIO creates a Selector that always uses the numbered prompt
// on the given reader and writer.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// SelectMany asks for any number of items and returns the chosen IDs in the
// order of items.
//
// Returns:
//   - ErrNoItems if items is empty
//   - ErrSelectionCancelled if the finder is aborted or input hits EOF
//   - ErrInvalidSelection if a number is out of range or not a number
func (s *Selector) SelectMany(header string, items []Item) ([]string, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	var picked []int
	var err error
	if s.fuzzy {
		picked, err = finder(items, header)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, ErrSelectionCancelled
		}
		if err != nil {
			return nil, errors.Wrap(err, "running selector")
		}
	} else {
		picked, err = s.numbered(header, items)
		if err != nil {
			return nil, err
		}
	}

	chosen := make([]bool, len(items))
	for _, i := range picked {
		chosen[i] = true
	}
	ids := make([]string, 0, len(picked))
	for i, it := range items {
		if chosen[i] {
			ids = append(ids, it.ID)
		}
	}
	return ids, nil
}

// numbered prints a numbered list and reads a comma- or space-separated
// list of numbers. An empty answer keeps the current selection; "none"
// clears it; "all" selects everything.
func (s *Selector) numbered(header string, items []Item) ([]int, error) {
	fmt.Fprintln(s.writer, header)
	var current []int
	for i, it := range items {
		mark := " "
		if it.Selected {
			mark = "x"
			current = append(current, i)
		}
		fmt.Fprintf(s.writer, "  [%s] %d) %s\n", mark, i+1, it.ID)
	}
	fmt.Fprintf(s.writer, "Select (numbers, all, none) [keep]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		if errors.Is(err, io.EOF) {
			return nil, ErrSelectionCancelled
		}
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	switch strings.ToLower(input) {
	case "":
		return current, nil
	case "none":
		return nil, nil
	case "all":
		all := make([]int, len(items))
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	fields := strings.FieldsFunc(input, func(r rune) bool { return r == ',' || r == ' ' })
	picked := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", f)
		}
		if n < 1 || n > len(items) {
			return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", n, len(items))
		}
		picked = append(picked, n-1)
	}
	return picked, nil
}
