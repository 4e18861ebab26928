// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vmware/ifacepicker/pkg/iface"
)

var validOutputFormats = []string{"table", "json", "yaml"}

// hostListing pairs a configured host with the interfaces found on it.
type hostListing struct {
	Host       string        `json:"host"`
	Interfaces []iface.Entry `json:"interfaces"`
}

// NewCommandList prints the interface inventory without prompting for a
// selection.
// Lists the local machine by default, a single configured host with
// --target, or every configured host with --target all.
func NewCommandList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List network interfaces without selecting one",
		Args:  cobra.NoArgs,
		Run:   listCommandFunc,
	}
}

func listCommandFunc(cmd *cobra.Command, args []string) {
	switch targetHost {
	case "":
		entries, err := iface.List(iface.DefaultSource())
		if err != nil {
			log.Fatalf("Error listing interfaces: %v", err)
		}

		gatewayIdx, gatewayAddr := iface.DefaultGatewayIndex(entries)
		if gatewayAddr != "" {
			printLog("Default gateway: %s\n", gatewayAddr)
		}
		mustPrintDoc(entries, func() {
			renderTable(os.Stdout, entries, gatewayIdx)
		})

	case "all":
		hosts := mustParseHosts()
		listings := make([]hostListing, 0, len(hosts))
		for _, h := range hosts {
			printLog("Connecting to host (%s: %s)\n", h.Name, h.Host)
			entries, err := iface.List(remoteSource(h))
			if err != nil {
				log.Printf("Error listing interfaces on (%s: %s): %v\n", h.Name, h.Host, err)
				continue
			}
			listings = append(listings, hostListing{Host: h.Name, Interfaces: entries})
		}
		mustPrintDoc(listings, func() {
			for _, l := range listings {
				fmt.Printf("Host: %s\n", l.Host)
				renderTable(os.Stdout, l.Interfaces, -1)
				fmt.Println()
			}
		})

	default:
		host := mustResolveTarget(targetHost)
		entries, err := iface.List(remoteSource(host))
		if err != nil {
			log.Fatalf("Error listing interfaces on (%s: %s): %v", host.Name, host.Host, err)
		}
		mustPrintDoc(entries, func() {
			renderTable(os.Stdout, entries, -1)
		})
	}
}

// renderTable writes one row per interface. The interface holding the
// default route is marked in the GATEWAY column when gatewayIdx is valid.
func renderTable(w io.Writer, entries []iface.Entry, gatewayIdx int) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tADDRESS\tPREFIX\tGATEWAY")
	for i, e := range entries {
		marker := ""
		if i == gatewayIdx {
			marker = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Address, e.Prefix, marker)
	}
	tw.Flush()
}
