// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidSelection reports a selection outside the menu range, or input
// that could not be parsed as an integer.
var ErrInvalidSelection = errors.New("invalid selection")

// PromptSelect displays a numbered menu on w and reads a single 1-based
// selection from r, for terminals where the full-screen menu is not wanted.
// The menu is the title, one "{n} - {option}" line per option, a blank line,
// and the prompt. Exactly one selection is read; there is no retry loop, and
// both out-of-range and non-numeric input fail with ErrInvalidSelection.
//
// Returns the zero-based index of the chosen option and its value.
func PromptSelect(r io.Reader, w io.Writer, title, prompt string, options []string) (int, string, error) {
	fmt.Fprintln(w, title)
	for i, option := range options {
		fmt.Fprintf(w, "%d - %s\n", i+1, option)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, prompt)

	input, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && input == "" {
		return -1, "", fmt.Errorf("read selection: %w", err)
	}

	input = strings.TrimSpace(input)
	choice, err := strconv.Atoi(input)
	if err != nil {
		return -1, "", fmt.Errorf("%w: %q is not a number", ErrInvalidSelection, input)
	}

	idx := choice - 1
	if idx < 0 || idx >= len(options) {
		return -1, "", fmt.Errorf("%w: %d is out of range [1, %d]", ErrInvalidSelection, choice, len(options))
	}

	return idx, options[idx], nil
}
