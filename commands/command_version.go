// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmware/ifacepicker/version"
)

// NewCommandVersion prints out the version of ifacepicker, honoring the
// output format flag.
func NewCommandVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of ifacepicker",
		Run:   versionCommandFunc,
	}
}

func versionCommandFunc(cmd *cobra.Command, args []string) {
	info := version.Get()

	mustPrintDoc(info, func() {
		fmt.Printf("ifacepicker version: %s\n", info.Version)
		fmt.Printf("Git SHA: %s\n", info.GitSHA)
		fmt.Printf("Go Version: %s\n", info.GoVersion)
		fmt.Printf("Go OS/Arch: %s\n", info.Platform)
	})
}
