// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/codehop/codehop/pkg/search"
	"github.com/codehop/codehop/pkg/workspaces"
)

var (
	docStyle          = lipgloss.NewStyle().Margin(1, 2)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	subtitleStyle     = lipgloss.NewStyle().PaddingLeft(6).Foreground(lipgloss.Color("241"))
	promptStyle       = lipgloss.NewStyle().Bold(true)
)

// maxVisibleRows bounds the number of results drawn at once.
const maxVisibleRows = 10

// PickAction is what the user chose to do with the selected result.
type PickAction int

const (
	// PickNone means the picker was dismissed.
	PickNone PickAction = iota
	// PickOpen opens the selected result in its editor instance.
	PickOpen
	// PickReveal reveals the selected local workspace in the file manager.
	PickReveal
)

type pickerModel struct {
	Query    string
	Results  []search.Candidate
	Cursor   int
	Action   PickAction
	Quitting bool

	filter func(text string) []search.Candidate
}

func newPickerModel(initial string, filter func(text string) []search.Candidate) *pickerModel {
	m := &pickerModel{Query: initial, filter: filter}
	m.refresh()
	return m
}

func (*pickerModel) Init() tea.Cmd { return nil }

func (m *pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.Action = PickNone
		m.Quitting = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "ctrl+n":
		if m.Cursor < len(m.Results)-1 {
			m.Cursor++
		}
	case "enter":
		return m.choose(PickOpen)
	case "ctrl+o":
		return m.choose(PickReveal)
	case "backspace":
		if r := []rune(m.Query); len(r) > 0 {
			m.Query = string(r[:len(r)-1])
			m.refresh()
		}
	default:
		switch keyMsg.Type {
		case tea.KeyRunes:
			m.Query += string(keyMsg.Runes)
			m.refresh()
		case tea.KeySpace:
			m.Query += " "
			m.refresh()
		}
	}
	return m, nil
}

func (m *pickerModel) choose(action PickAction) (tea.Model, tea.Cmd) {
	if len(m.Results) == 0 {
		return m, nil
	}
	if action == PickReveal && !isLocalWorkspace(m.Results[m.Cursor]) {
		return m, nil
	}
	m.Action = action
	m.Quitting = true
	return m, tea.Quit
}

// refresh re-runs the query and resets the cursor to the best match.
func (m *pickerModel) refresh() {
	m.Results = m.filter(m.Query)
	m.Cursor = 0
}

// Selected returns the result under the cursor.
func (m *pickerModel) Selected() (search.Candidate, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Results) {
		return search.Candidate{}, false
	}
	return m.Results[m.Cursor], true
}

func (m *pickerModel) View() string {
	if m.Quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render("> "+m.Query) + "\n\n")

	if len(m.Results) == 0 {
		b.WriteString(itemStyle.Render("No results.") + "\n")
	}
	start, end := visibleWindow(m.Cursor, len(m.Results))
	for i := start; i < end; i++ {
		b.WriteString(renderCandidateRow(m, i))
	}

	b.WriteString("\nType to search, ↑/↓ to move, 'enter' to open, 'ctrl+o' to reveal folder, 'esc' to quit.\n")
	return docStyle.Render(b.String())
}

// visibleWindow returns the range of rows to draw so that the cursor stays visible.
func visibleWindow(cursor, total int) (int, int) {
	if total <= maxVisibleRows {
		return 0, total
	}
	start := cursor - maxVisibleRows/2
	start = max(start, 0)
	start = min(start, total-maxVisibleRows)
	return start, start + maxVisibleRows
}

func renderCandidateRow(m *pickerModel, i int) string {
	c := m.Results[i]
	cursor := "  "
	if m.Cursor == i {
		cursor = "> "
	}
	row := fmt.Sprintf("%s%s", cursor, c.Title)
	subtitle := subtitleStyle.Render(c.Subtitle) + "\n"
	if m.Cursor == i {
		return selectedItemStyle.Render(row) + "\n" + subtitle
	}
	return itemStyle.Render(row) + "\n" + subtitle
}

func isLocalWorkspace(c search.Candidate) bool {
	return c.Workspace != nil && c.Workspace.Location == workspaces.LocationLocal
}

// RunPicker runs the interactive search. filter is called with the query text
// after every edit. It returns the chosen result and what to do with it.
func RunPicker(initial string, filter func(text string) []search.Candidate) (search.Candidate, PickAction, error) {
	model := newPickerModel(initial, filter)
	p := tea.NewProgram(model)
	finalModel, err := p.Run()
	if err != nil {
		return search.Candidate{}, PickNone, err
	}
	m := finalModel.(*pickerModel)
	chosen, ok := m.Selected()
	if !ok || m.Action == PickNone {
		return search.Candidate{}, PickNone, nil
	}
	return chosen, m.Action, nil
}
