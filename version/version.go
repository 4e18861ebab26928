// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package version

import "runtime"

// Version and GitSHA identify the build; both are overridden at build
// time via -ldflags.
var (
	Version = "0.1.0"
	GitSHA  = "unknown"
)

// Info is the build and runtime identity of the binary.
type Info struct {
	Version   string `json:"version"`
	GitSHA    string `json:"gitSha"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// Get captures the identity of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitSHA:    GitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
