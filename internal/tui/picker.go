// Package tui implements the full-screen model picker behind setup --tui.
// The numbered menu in internal/selector stays the default; this is for
// people who want to fuzzy-search the catalog instead of typing an index.
package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"clawmgr/internal/catalog"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	filterLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				PaddingLeft(2)

	filterTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(2)

	paginationStyle = lipgloss.NewStyle().
			PaddingLeft(4)
)

// item adapts a catalog entry to the bubbles list delegate.
type item struct {
	catalog.Model
}

func (i item) FilterValue() string { return i.ID + " " + i.DisplayName }
func (i item) Title() string       { return i.ID }

func (i item) Description() string {
	parts := []string{i.Provider, i.PriceNote}
	if i.ContextWindow > 0 {
		parts = append(parts, fmt.Sprintf("%dk ctx", i.ContextWindow/1000))
	}
	return strings.Join(parts, " · ")
}

type picker struct {
	list        list.Model
	filterInput textinput.Model
	options     []catalog.Model
	filtered    []catalog.Model
	choice      *catalog.Model
	canceled    bool
	lastFilter  string
	title       string
	width       int
}

func newPicker(title string, options []catalog.Model) *picker {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	delegate.SetSpacing(0)

	items := make([]list.Item, len(options))
	for i, m := range options {
		items[i] = item{m}
	}

	l := list.New(items, delegate, 0, 0)
	l.SetShowTitle(false)
	// The visible filter input replaces the list's own filtering.
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = paginationStyle

	return &picker{
		list:        l,
		filterInput: ti,
		options:     options,
		filtered:    options,
		title:       title,
		width:       80,
	}
}

func (p *picker) Init() tea.Cmd {
	return nil
}

func (p *picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.list.SetSize(msg.Width, msg.Height-5)
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			p.canceled = true
			return p, tea.Quit

		case "enter":
			if it, ok := p.list.SelectedItem().(item); ok {
				p.choice = &it.Model
				return p, tea.Quit
			}

		case "esc":
			if p.filterInput.Value() != "" {
				p.filterInput.SetValue("")
				p.applyFilter("")
				p.lastFilter = ""
				return p, nil
			}
			p.canceled = true
			return p, tea.Quit
		}
	}

	var inputCmd tea.Cmd
	p.filterInput, inputCmd = p.filterInput.Update(msg)

	if current := p.filterInput.Value(); current != p.lastFilter {
		p.applyFilter(current)
		p.lastFilter = current
	}

	var listCmd tea.Cmd
	p.list, listCmd = p.list.Update(msg)

	return p, tea.Batch(inputCmd, listCmd)
}

// applyFilter narrows the visible options by fuzzy match, best score first.
func (p *picker) applyFilter(filter string) {
	if filter == "" {
		items := make([]list.Item, len(p.options))
		for i, m := range p.options {
			items[i] = item{m}
		}
		p.list.SetItems(items)
		p.filtered = p.options
		return
	}

	sources := make([]string, len(p.options))
	for i, m := range p.options {
		sources[i] = m.ID + " " + m.DisplayName + " " + m.Provider
	}

	matches := fuzzy.Find(filter, sources)
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	filtered := make([]catalog.Model, 0, len(matches))
	items := make([]list.Item, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, p.options[match.Index])
		items = append(items, item{p.options[match.Index]})
	}
	p.list.SetItems(items)
	p.filtered = filtered
}

func (p *picker) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")

	b.WriteString(filterLabelStyle.Render("Filter: "))
	if text := p.filterInput.Value(); text == "" {
		b.WriteString(mutedStyle.Render("type to filter, enter to select, esc to cancel"))
	} else {
		b.WriteString(filterTextStyle.Render(text))
	}
	b.WriteString("\n")

	b.WriteString(p.list.View())
	b.WriteString("\n")

	if text := p.filterInput.Value(); text != "" && len(p.filtered) == 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("No models match %q, esc clears the filter", text)))
	} else {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Showing %d of %d models", len(p.filtered), len(p.options))))
	}
	b.WriteString("\n")

	return b.String()
}

// Pick runs the full-screen picker and returns the chosen option. Cancel,
// a broken terminal and a non-TTY stdin all fall back to
// options[defaultIndex], so the answer is always an element of options.
func Pick(title string, options []catalog.Model, defaultIndex int) catalog.Model {
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}
	if !IsTTY() {
		return options[defaultIndex]
	}

	prog := tea.NewProgram(newPicker(title, options), tea.WithAltScreen())
	m, err := prog.Run()
	if err != nil {
		return options[defaultIndex]
	}

	result := m.(*picker)
	if result.canceled || result.choice == nil {
		return options[defaultIndex]
	}
	return *result.choice
}

// IsTTY reports whether stdin is attached to a terminal.
func IsTTY() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
