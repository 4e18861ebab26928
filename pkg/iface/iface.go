// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

// Package iface extracts network interfaces and their addresses from the
// output of an interface-listing command such as `ip a`.
package iface

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NoAddress is the placeholder recorded for interfaces without a
// configured address.
const NoAddress = "<no ip address>"

const (
	headerMarker = ": <"
	indexSep     = ": "
	addrMarker   = "inet "
)

// Entry is one interface as reported by the listing command. Address holds
// the first configured address verbatim (no validation), or NoAddress.
// Prefix holds the prefix length seen after the '/' on the address line,
// empty when there was none.
type Entry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Prefix  string `json:"prefix,omitempty"`
}

// MenuLabel renders the entry the way the selection menu displays it.
func (e Entry) MenuLabel() string {
	return fmt.Sprintf("Interface: %s, IP: %s", e.Name, e.Address)
}

// Selection is a resolved choice in the shell-consumable output form.
type Selection struct {
	Iface  string `env:"IFACE" json:"iface"`
	IPAddr string `env:"IPADDR" json:"ipaddr"`
}

// NewSelection builds the output pair for an entry, substituting the
// placeholder when the address is empty.
func NewSelection(e Entry) Selection {
	addr := e.Address
	if addr == "" {
		addr = NoAddress
	}
	return Selection{Iface: e.Name, IPAddr: addr}
}

// Parse scans the listing output line by line and returns the interfaces in
// the order they appear. Each interface stanza opens with a header line
// containing ": <" after a numeric index field; a following "inet " line
// supplies its first address. Interfaces whose stanza ends (next header or
// EOF) without an address line are recorded with NoAddress. Lines matching
// neither pattern are skipped. The returned error is the reader's own read
// error, never a content error.
func Parse(r io.Reader) ([]Entry, error) {
	var (
		entries []Entry
		pending string
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		name, ok := headerName(line)
		if !ok {
			if pending == "" {
				continue
			}
			addr, prefix, ok := inetAddress(line)
			if !ok {
				continue
			}
			entries = append(entries, Entry{Name: pending, Address: addr, Prefix: prefix})
			pending = ""
			continue
		}

		if pending != "" {
			entries = append(entries, Entry{Name: pending, Address: NoAddress})
		}
		pending = name
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read listing output: %w", err)
	}

	// last stanza had no address line
	if pending != "" {
		entries = append(entries, Entry{Name: pending, Address: NoAddress})
	}

	return entries, nil
}

// headerName extracts the interface name from a stanza header line, e.g.
// "2: eth0: <BROADCAST,MULTICAST,UP>". The name sits between the index
// field separator (first ": ") and the ": <" match, so index width does not
// matter. Lines without both markers in that order, or with nothing between
// them, are not headers.
func headerName(line string) (string, bool) {
	marker := strings.Index(line, headerMarker)
	if marker < 0 {
		return "", false
	}
	sep := strings.Index(line, indexSep)
	start := sep + len(indexSep)
	if start >= marker {
		return "", false
	}
	return line[start:marker], true
}

// inetAddress extracts the address from an "inet " line, taking everything
// up to the next '/' (or to end of line when there is none), plus the
// prefix length digits after the '/'.
func inetAddress(line string) (addr, prefix string, ok bool) {
	pos := strings.Index(line, addrMarker)
	if pos < 0 {
		return "", "", false
	}
	rest := line[pos+len(addrMarker):]

	slash := strings.IndexByte(rest, '/')
	if slash < 0 {
		return rest, "", true
	}

	prefix = rest[slash+1:]
	if space := strings.IndexByte(prefix, ' '); space >= 0 {
		prefix = prefix[:space]
	}
	return rest[:slash], prefix, true
}
