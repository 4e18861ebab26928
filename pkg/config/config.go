// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vmware/ifacepicker/pkg/ssh"
)

const DefaultConfigFilename = "hosts.json"

// Host describes a remote machine whose network interfaces can be listed
// over SSH. Port defaults to 22 when omitted.
type Host struct {
	Name       string `json:"name"`
	Host       string `json:"host"`
	Port       int    `json:"port,omitempty"`
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
	Passphrase string `json:"passphrase,omitempty"`
}

func ParseHostFromFile(path string) ([]*Host, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file failed: %w", err)
	}

	var hosts []*Host
	if err := json.Unmarshal(data, &hosts); err != nil {
		return nil, fmt.Errorf("unmarshal json failed: %w", err)
	}

	return hosts, nil
}

// FindHost returns the host whose Name matches name, or an error listing
// the names that are configured.
func FindHost(hosts []*Host, name string) (*Host, error) {
	var names []string
	for _, h := range hosts {
		if h.Name == name {
			return h, nil
		}
		names = append(names, h.Name)
	}
	return nil, fmt.Errorf("host %q not found in config, configured hosts: %v", name, names)
}

// SSHConfig translates the host entry into connection settings for the
// ssh package.
func (h *Host) SSHConfig() *ssh.Config {
	return &ssh.Config{
		User:                 h.Username,
		Host:                 h.Host,
		Port:                 h.Port,
		Password:             h.Password,
		PrivateKeyPath:       h.PrivateKey,
		PrivateKeyPassphrase: h.Passphrase,
	}
}
