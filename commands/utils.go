// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"

	"sigs.k8s.io/yaml"

	"github.com/vmware/ifacepicker/pkg/config"
	"github.com/vmware/ifacepicker/pkg/envfile"
	"github.com/vmware/ifacepicker/pkg/iface"
	"github.com/vmware/ifacepicker/pkg/ssh"
)

const remoteListCommand = "ip a"

func printLog(format string, v ...any) {
	if verbose {
		log.Printf(format, v...)
	}
}

func remoteSource(host *config.Host) *iface.RemoteSource {
	return &iface.RemoteSource{Config: host.SSHConfig(), Command: remoteListCommand}
}

func mustParseHosts() []*config.Host {
	hosts, err := config.ParseHostFromFile(configFile)
	if err != nil {
		log.Fatalf("Error parsing hosts config file: %v", err)
	}
	if len(hosts) == 0 {
		log.Fatalf("%s should contain at least one host, got: %d", configFile, len(hosts))
	}
	return hosts
}

func mustResolveTarget(name string) *config.Host {
	host, err := config.FindHost(mustParseHosts(), name)
	if err != nil {
		log.Fatalf("Error resolving target host: %v", err)
	}
	return host
}

// mustPrintDoc renders v according to the output format flag: table delegates
// to the given render func, json and yaml marshal v.
func mustPrintDoc(v any, table func()) {
	switch outputFormat {
	case "table":
		table()
	case "json":
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			log.Fatalf("Error encoding as json: %v", err)
		}
		fmt.Println(string(out))
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			log.Fatalf("Error encoding as yaml: %v", err)
		}
		fmt.Print(string(out))
	default:
		log.Fatalf("Invalid output format: %s, valid formats are %v", outputFormat, validOutputFormats)
	}
}

// writeEnvFile places the selection at envFilePath, locally when host is
// nil, otherwise on the remote host the interface was picked from.
func writeEnvFile(sel iface.Selection, host *config.Host) error {
	if host == nil {
		return envfile.Write(envFilePath, sel)
	}

	var buf bytes.Buffer
	if err := envfile.Marshal(&buf, sel); err != nil {
		return fmt.Errorf("marshal env file: %w", err)
	}

	printLog("Connecting to host (%s: %s)\n", host.Name, host.Host)
	client, err := ssh.NewClient(host.SSHConfig())
	if err != nil {
		return fmt.Errorf("create ssh client to (%s: %s): %w", host.Name, host.Host, err)
	}
	defer client.Close()

	printLog("Uploading selection to %s on host (%s: %s)\n", envFilePath, host.Name, host.Host)
	return client.Upload(buf.Bytes(), envFilePath, 0o644)
}
