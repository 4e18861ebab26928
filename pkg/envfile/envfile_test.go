// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package envfile

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type selection struct {
	Iface    string `env:"IFACE"`
	IPAddr   string `env:"IPADDR"`
	internal string
}

func TestMarshal(t *testing.T) {
	var buf bytes.Buffer
	err := Marshal(&buf, selection{Iface: "eth0", IPAddr: "192.168.1.10"})
	require.NoError(t, err)
	require.Equal(t, "IFACE=eth0\nIPADDR=192.168.1.10\n", buf.String())
}

func TestMarshalEmptyValuesStillWritten(t *testing.T) {
	var buf bytes.Buffer
	err := Marshal(&buf, &selection{Iface: "lo"})
	require.NoError(t, err)
	require.Equal(t, "IFACE=lo\nIPADDR=\n", buf.String())
}

func TestMarshalUntaggedFieldsIgnored(t *testing.T) {
	var buf bytes.Buffer
	err := Marshal(&buf, selection{Iface: "eth0", IPAddr: "10.0.0.1", internal: "hidden"})
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "hidden")
}

func TestMarshalRejectsNonStruct(t *testing.T) {
	var buf bytes.Buffer
	err := Marshal(&buf, 42)
	require.Error(t, err)
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selection.env")
	err := Write(path, selection{Iface: "wlan0", IPAddr: "<no ip address>"})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "IFACE=wlan0\nIPADDR=<no ip address>\n", string(content))
}
