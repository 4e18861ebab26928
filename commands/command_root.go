// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmware/ifacepicker/pkg/cliui"
	"github.com/vmware/ifacepicker/pkg/config"
	"github.com/vmware/ifacepicker/pkg/envfile"
	"github.com/vmware/ifacepicker/pkg/iface"
)

const (
	cliName        = "ifacepicker"
	cliDescription = "List and easily select network interfaces, displaying their respective IP addresses."
)

const (
	listTitle    = "List of Interfaces and IP Addresses:"
	selectPrompt = "Choose an interface: "
)

var validMenuStyles = []string{"plain", "tui"}

var (
	configFile   string
	targetHost   string
	menuStyle    string
	envFilePath  string
	outputFormat string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   cliName,
		Short: cliDescription,
		Long: cliDescription + `

The chosen interface is printed to stdout as shell evaluable assignments:

  IFACE=<interface-name>
  IPADDR=<configured-ip>

When the chosen interface has no configured IP address, IPADDR is set to
the literal "<no ip address>".`,
		Args: cobra.ArbitraryArgs,
		Run:  rootCommandFunc,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigFilename, "path to remote hosts config file")
	rootCmd.PersistentFlags().StringVarP(&targetHost, "target", "t", "", "name of a configured remote host to list interfaces from")
	rootCmd.PersistentFlags().StringVarP(&menuStyle, "menu", "m", "plain", fmt.Sprintf("menu style, valid styles are: %v", validMenuStyles))
	rootCmd.PersistentFlags().StringVarP(&envFilePath, "env-file", "f", "", "also write the selection to this file in KEY=VALUE form")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", fmt.Sprintf("list output format, valid formats are: %v", validOutputFormats))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(
		NewCommandVersion(),
		NewCommandList(),
	)
}

func RootCmd() *cobra.Command {
	return rootCmd
}

func rootCommandFunc(cmd *cobra.Command, args []string) {
	var (
		src  iface.Source
		host *config.Host
	)
	if targetHost == "" {
		src = iface.DefaultSource()
	} else {
		host = mustResolveTarget(targetHost)
		src = remoteSource(host)
	}

	printLog("Listing interfaces via %q\n", src.Name())
	entries, err := iface.List(src)
	if err != nil {
		log.Fatalf("Error listing interfaces: %v", err)
	}

	options := make([]string, len(entries))
	for i, e := range entries {
		options[i] = e.MenuLabel()
	}

	var idx int
	switch menuStyle {
	case "plain":
		idx, _, err = cliui.PromptSelect(os.Stdin, os.Stdout, listTitle, selectPrompt, options)
	case "tui":
		idx, _, err = cliui.Select(listTitle, options)
	default:
		log.Fatalf("Invalid menu style: %s, valid styles are %v", menuStyle, validMenuStyles)
	}
	if err != nil {
		if errors.Is(err, cliui.ErrInvalidSelection) {
			printLog("%v\n", err)
			log.Fatalf("Invalid interface index!")
		}
		log.Fatalf("Error selecting interface: %v", err)
	}

	sel := iface.NewSelection(entries[idx])

	if envFilePath != "" {
		if err := writeEnvFile(sel, host); err != nil {
			log.Fatalf("Error writing env file %s: %v", envFilePath, err)
		}
		printLog("Wrote selection to %s\n", envFilePath)
	}

	if err := envfile.Marshal(os.Stdout, sel); err != nil {
		log.Fatalf("Error printing selection: %v", err)
	}
}
