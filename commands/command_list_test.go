// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vmware/ifacepicker/pkg/iface"
)

func TestRenderTable(t *testing.T) {
	entries := []iface.Entry{
		{Name: "lo", Address: "127.0.0.1", Prefix: "8"},
		{Name: "eth0", Address: "192.168.1.10", Prefix: "24"},
		{Name: "docker0", Address: "<no ip address>"},
	}

	t.Run("marks the gateway interface", func(t *testing.T) {
		var out bytes.Buffer
		renderTable(&out, entries, 1)

		require.Equal(t, ""+
			"NAME     ADDRESS          PREFIX  GATEWAY\n"+
			"lo       127.0.0.1        8       \n"+
			"eth0     192.168.1.10     24      *\n"+
			"docker0  <no ip address>          \n",
			out.String())
	})

	t.Run("no gateway marker", func(t *testing.T) {
		var out bytes.Buffer
		renderTable(&out, entries, -1)

		require.NotContains(t, out.String(), "*")
	})
}

func TestHostListingJSONShape(t *testing.T) {
	listing := hostListing{
		Host: "edge-gw1",
		Interfaces: []iface.Entry{
			{Name: "eth0", Address: "10.100.72.7", Prefix: "24"},
		},
	}

	out, err := json.Marshal(listing)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"host": "edge-gw1",
		"interfaces": [
			{"name": "eth0", "address": "10.100.72.7", "prefix": "24"}
		]
	}`, string(out))
}
