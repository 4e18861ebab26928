// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package ssh

import (
	"bufio"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// DefaultKnownHostsPath returns the current user's known_hosts file.
func DefaultKnownHostsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".ssh", "known_hosts"), nil
}

// configureHostKeyCallback returns the provided callback if set, otherwise
// an interactive callback that prompts the user for unknown hosts.
func configureHostKeyCallback(hostKeyCallback ssh.HostKeyCallback) (ssh.HostKeyCallback, error) {
	if hostKeyCallback != nil {
		return hostKeyCallback, nil
	}

	path, err := DefaultKnownHostsPath()
	if err != nil {
		return nil, err
	}

	return InteractiveHostKeyCallback(path)
}

// InteractiveHostKeyCallback creates a host key callback that prompts the
// user when encountering an unknown host key and, on acceptance, records
// the key in the known_hosts file. Keys already present are validated
// without prompting.
func InteractiveHostKeyCallback(knownHostsPath string) (ssh.HostKeyCallback, error) {
	if err := ensureKnownHostsFile(knownHostsPath); err != nil {
		return nil, fmt.Errorf("failed to ensure known_hosts file exists: %w", err)
	}

	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		// Re-open known_hosts on every attempt so keys added by earlier
		// connections are seen.
		knownHostsCallback, err := knownhosts.New(knownHostsPath)
		if err != nil {
			knownHostsCallback = func(_ string, _ net.Addr, _ ssh.PublicKey) error {
				return &knownhosts.KeyError{Want: []knownhosts.KnownKey{}}
			}
		}

		// knownhosts lookups are keyed by host:port.
		lookupHostname := hostname
		if tcpAddr, ok := remote.(*net.TCPAddr); ok {
			if !strings.Contains(hostname, ":") {
				lookupHostname = net.JoinHostPort(hostname, fmt.Sprint(tcpAddr.Port))
			}
		}

		err = knownHostsCallback(lookupHostname, remote, key)
		if err == nil {
			return nil
		}

		var keyErr *knownhosts.KeyError
		if errors.As(err, &keyErr) {
			return promptAndAddHostKey(hostname, remote, key, knownHostsPath, keyErr)
		}

		// Malformed known_hosts entries surface as parse errors. Treat them
		// like an unknown host so the user can still add the key.
		errStr := err.Error()
		if strings.Contains(errStr, "missing port") || strings.Contains(errStr, "SplitHostPort") {
			keyErr = &knownhosts.KeyError{Want: []knownhosts.KnownKey{}}
			return promptAndAddHostKey(hostname, remote, key, knownHostsPath, keyErr)
		}

		return err
	}, nil
}

// promptAndAddHostKey asks the user to accept or reject an unknown host key
// and appends it to known_hosts if accepted.
func promptAndAddHostKey(hostname string, remote net.Addr, key ssh.PublicKey, knownHostsPath string, keyErr *knownhosts.KeyError) error {
	fingerprint := getHostKeyFingerprint(key)

	fmt.Printf("\nThe authenticity of host '%s (%s)' can't be established.\n", hostname, remote.String())
	fmt.Printf("%s key fingerprint is %s.\n", key.Type(), fingerprint)
	if len(keyErr.Want) > 0 {
		fmt.Printf("This host key is known but does not match. Possible man-in-the-middle attack!\n")
	} else {
		fmt.Printf("This key is not known by any other names.\n")
	}
	fmt.Printf("Are you sure you want to continue connecting (yes/no/[fingerprint])? ")

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.TrimSpace(strings.ToLower(response))
	if response != "yes" && response != "y" && response != strings.ToLower(fingerprint) {
		return fmt.Errorf("host key verification cancelled by user")
	}

	if err := addHostKeyToKnownHosts(hostname, remote, key, knownHostsPath); err != nil {
		return fmt.Errorf("failed to add host key to known_hosts: %w", err)
	}

	fmt.Printf("Warning: Permanently added '%s' (%s) to the list of known hosts.\n", hostname, key.Type())
	return nil
}

// getHostKeyFingerprint returns the OpenSSH style SHA256 fingerprint of key.
func getHostKeyFingerprint(key ssh.PublicKey) string {
	hash := sha256.Sum256(key.Marshal())
	return "SHA256:" + base64.StdEncoding.EncodeToString(hash[:])
}

// addHostKeyToKnownHosts appends a host key entry covering both the
// hostname and, when available, the remote IP.
func addHostKeyToKnownHosts(hostname string, remote net.Addr, key ssh.PublicKey, knownHostsPath string) error {
	file, err := os.OpenFile(knownHostsPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open known_hosts file: %w", err)
	}
	defer file.Close()

	addresses := []string{hostname}
	if tcpAddr, ok := remote.(*net.TCPAddr); ok {
		if tcpAddr.IP.String() != hostname {
			addresses = append(addresses, tcpAddr.IP.String())
		}
	}

	entry := knownhosts.Line(addresses, key)
	if _, err := file.WriteString(entry + "\n"); err != nil {
		return fmt.Errorf("failed to write to known_hosts file: %w", err)
	}

	return nil
}

// ensureKnownHostsFile creates the known_hosts file and its directory when
// missing, with owner-only permissions.
func ensureKnownHostsFile(knownHostsPath string) error {
	dir := filepath.Dir(knownHostsPath)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create .ssh directory: %w", err)
	}

	if _, err := os.Stat(knownHostsPath); os.IsNotExist(err) {
		file, err := os.Create(knownHostsPath)
		if err != nil {
			return fmt.Errorf("failed to create known_hosts file: %w", err)
		}
		file.Close()

		if err := os.Chmod(knownHostsPath, 0o600); err != nil {
			return fmt.Errorf("failed to set known_hosts file permissions: %w", err)
		}
	}

	return nil
}
