// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)

// model drives the menu until the user confirms a row or backs out.
type model struct {
	list      list.Model
	index     int
	label     string
	cancelled bool
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if i, ok := m.list.SelectedItem().(item); ok {
				m.index = m.list.Index()
				m.label = string(i)
			}
			return m, tea.Quit
		}

		// workaround to ensure 'q' has consistent behaviour
		// as 'ctrl+c' and 'ESC'.
		if msg.String() == "q" {
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.label != "" {
		return quitTextStyle.Render(fmt.Sprintf("Selected %d - %s", m.index+1, m.label))
	}
	if m.cancelled {
		return quitTextStyle.Render("No interface selected.")
	}

	return "\n" + m.list.View()
}
