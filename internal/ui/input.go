package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/dex/internal/catalog"
)

// handleInputKey routes keys to the focused text input. Enter submits and
// esc cancels; everything else edits the value.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		mode := m.input
		value := m.activeInput().Value()
		m.closeInput()
		if mode == inputSearch {
			return m, m.dispatch(catalog.Search{Term: value})
		}
		return m, m.dispatch(catalog.SetPageSize{Raw: value})
	}
	return m.updateInput(msg)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.input {
	case inputSearch:
		m.searchInput, cmd = m.searchInput.Update(msg)
	case inputPageSize:
		m.sizeInput, cmd = m.sizeInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) activeInput() *textinput.Model {
	if m.input == inputPageSize {
		return &m.sizeInput
	}
	return &m.searchInput
}

func (m *Model) closeInput() {
	m.searchInput.Blur()
	m.sizeInput.Blur()
	m.input = inputNone
	m.refresh()
}
