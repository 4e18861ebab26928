// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package iface

import (
	"net"

	"github.com/jackpal/gateway"
)

// DefaultGatewayIndex discovers the default gateway and returns the index of
// the entry whose subnet contains it, along with the gateway address.
// Returns -1 when discovery fails or no entry's subnet matches; the gateway
// address is empty only when discovery itself failed.
func DefaultGatewayIndex(entries []Entry) (int, string) {
	gw, err := gateway.DiscoverGateway()
	if err != nil || gw == nil {
		return -1, ""
	}
	return gatewayIndex(entries, gw), gw.String()
}

func gatewayIndex(entries []Entry, gw net.IP) int {
	for i, e := range entries {
		if e.Prefix == "" {
			continue
		}
		_, subnet, err := net.ParseCIDR(e.Address + "/" + e.Prefix)
		if err != nil {
			continue
		}
		if subnet.Contains(gw) {
			return i
		}
	}
	return -1
}
