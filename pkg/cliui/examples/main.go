// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package main

import (
	"fmt"
	"log"

	"github.com/vmware/ifacepicker/pkg/cliui"
)

func main() {
	options := []string{
		"Interface: lo, IP: 127.0.0.1",
		"Interface: eth0, IP: 192.168.1.10",
		"Interface: docker0, IP: <no ip address>",
	}

	index, choice, err := cliui.Select("List of Interfaces and IP Addresses:", options)
	if err != nil {
		log.Fatalf("Error occurred during selection: %v", err)
	}

	fmt.Printf("Index: %d, Choice: %s\n", index, choice)
}
