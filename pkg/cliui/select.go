// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 20

	// maxListHeight caps the menu; interface lists are usually short, so
	// the menu shrinks to fit below this.
	maxListHeight = 14
	listChrome    = 6
)

var (
	titleStyle      = lipgloss.NewStyle().MarginLeft(2)
	paginationStyle = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle       = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// Select renders an interactive menu of options under the given title and
// blocks until the user confirms a row or backs out.
//
// Parameters:
//   - title: heading shown above the menu.
//   - options: the selectable rows, in display order.
//
// Returns:
//   - int: zero-based index of the chosen option.
//   - string: the chosen option itself.
//   - error: when the menu cannot run or the user cancels.
//
// Example usage:
//
//	options := []string{"Interface: lo, IP: 127.0.0.1", "Interface: eth0, IP: 10.0.0.5"}
//	idx, choice, err := cliui.Select("List of Interfaces and IP Addresses:", options)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("You selected option %d: %s\n", idx, choice)
func Select(title string, options []string) (int, string, error) {
	if len(options) == 0 {
		return -1, "", errors.New("no options provided")
	}

	items := make([]list.Item, len(options))
	for i, option := range options {
		items[i] = item(option)
	}

	height := len(items) + listChrome
	if height > maxListHeight {
		height = maxListHeight
	}

	l := list.New(items, itemDelegate{}, defaultWidth, height)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	m := &model{
		list:  l,
		index: -1,
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatalf("error selecting from CLI menu: %v", err)
	}

	if m.cancelled {
		return -1, "", errors.New("selection cancelled by user")
	}

	return m.index, m.label, nil
}
