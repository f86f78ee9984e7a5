// Package selector implements the numbered model menu setup shows when a
// model id was not given on the command line.
package selector

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clawmgr/internal/catalog"
)

// Selector reads one menu choice from an input stream. The stream is
// injected so tests can drive it without a terminal.
type Selector struct {
	reader *bufio.Reader
	writer io.Writer
}

// New returns a Selector reading choices from r and rendering the menu to w.
func New(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: bufio.NewReader(r),
		writer: w,
	}
}

// Choose renders options as a numbered menu and reads one line. Empty,
// non-numeric and out-of-range input silently falls back to
// options[defaultIndex], as does an unreadable stream: the answer is always
// an element of options. options must be non-empty.
func (s *Selector) Choose(title string, options []catalog.Model, defaultIndex int) catalog.Model {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	fmt.Fprintf(s.writer, "%s:\n", title)
	for i, opt := range options {
		line := fmt.Sprintf("  %2d) %s (%s)  %s", i+1, opt.DisplayName, opt.ID, opt.PriceNote)
		if i == 0 {
			line += " (recommended)"
		}
		fmt.Fprintln(s.writer, line)
	}
	fmt.Fprintf(s.writer, "\nSelect (1-%d) [Enter for %s]: ", len(options), options[defaultIndex].ID)

	input, err := s.reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if err != nil && input == "" {
		return options[defaultIndex]
	}
	if input == "" {
		return options[defaultIndex]
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(options) {
		return options[defaultIndex]
	}
	return options[n-1]
}
