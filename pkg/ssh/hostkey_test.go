// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package ssh

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// stubStdin replaces os.Stdin with a pipe carrying input for the duration
// of the test.
func stubStdin(t *testing.T, input string) {
	t.Helper()

	oldStdin := os.Stdin
	t.Cleanup(func() { os.Stdin = oldStdin })

	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdin = r

	go func() {
		defer w.Close()
		_, _ = w.WriteString(input)
	}()
}

// generateTestHostKey generates an RSA host key for testing.
func generateTestHostKey() (ssh.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}

	publicKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH public key: %w", err)
	}

	return publicKey, nil
}

func TestInteractiveHostKeyCallbackUnknownHost(t *testing.T) {
	hostKey, err := generateTestHostKey()
	require.NoError(t, err)

	remoteAddr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 22}

	t.Run("user accepts host key", func(t *testing.T) {
		knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")
		callback, err := InteractiveHostKeyCallback(knownHostsPath)
		require.NoError(t, err)

		stubStdin(t, "yes\n")

		require.NoError(t, callback("testhost", remoteAddr, hostKey))

		// Verify the host key was added to known_hosts
		content, err := os.ReadFile(knownHostsPath)
		require.NoError(t, err)
		require.Contains(t, string(content), "testhost")
		require.Contains(t, string(content), "127.0.0.1")
	})

	t.Run("user rejects host key", func(t *testing.T) {
		knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")
		callback, err := InteractiveHostKeyCallback(knownHostsPath)
		require.NoError(t, err)

		stubStdin(t, "no\n")

		err = callback("testhost2", remoteAddr, hostKey)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cancelled by user")

		content, err := os.ReadFile(knownHostsPath)
		require.NoError(t, err)
		require.NotContains(t, string(content), "testhost2")
	})

	t.Run("user accepts with fingerprint", func(t *testing.T) {
		knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")
		callback, err := InteractiveHostKeyCallback(knownHostsPath)
		require.NoError(t, err)

		stubStdin(t, getHostKeyFingerprint(hostKey)+"\n")

		require.NoError(t, callback("testhost", remoteAddr, hostKey))

		content, err := os.ReadFile(knownHostsPath)
		require.NoError(t, err)
		require.Contains(t, string(content), "testhost")
	})

	t.Run("invalid response cancels", func(t *testing.T) {
		knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")
		callback, err := InteractiveHostKeyCallback(knownHostsPath)
		require.NoError(t, err)

		stubStdin(t, "maybe\n")

		err = callback("testhost", remoteAddr, hostKey)
		require.Error(t, err)
		require.Contains(t, err.Error(), "cancelled by user")
	})
}

func TestInteractiveHostKeyCallbackKnownHost(t *testing.T) {
	knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")

	hostKey, err := generateTestHostKey()
	require.NoError(t, err)

	remoteAddr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 22}

	// Add the host key to known_hosts up front
	require.NoError(t, addHostKeyToKnownHosts("testhost", remoteAddr, hostKey, knownHostsPath))

	callback, err := InteractiveHostKeyCallback(knownHostsPath)
	require.NoError(t, err)

	// Known host must validate without prompting. os.Stdin is not
	// stubbed, so any prompt would fail the test.
	require.NoError(t, callback("testhost", remoteAddr, hostKey))
}

func TestInteractiveHostKeyCallbackIdempotent(t *testing.T) {
	knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")

	hostKey, err := generateTestHostKey()
	require.NoError(t, err)

	remoteAddr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 22}

	callback, err := InteractiveHostKeyCallback(knownHostsPath)
	require.NoError(t, err)

	// First call prompts and records the key.
	stubStdin(t, "yes\n")
	require.NoError(t, callback(remoteAddr.IP.String(), remoteAddr, hostKey))

	// Second call must find the key without prompting.
	require.NoError(t, callback(remoteAddr.IP.String(), remoteAddr, hostKey))

	content, err := os.ReadFile(knownHostsPath)
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	require.Lenf(t, lines, 1, "known_hosts should contain exactly one entry")
}

func TestGetHostKeyFingerprint(t *testing.T) {
	hostKey, err := generateTestHostKey()
	require.NoError(t, err)

	fingerprint := getHostKeyFingerprint(hostKey)
	require.NotEmpty(t, fingerprint)
	require.True(t, strings.HasPrefix(fingerprint, "SHA256:"))
}

func TestAddHostKeyToKnownHosts(t *testing.T) {
	knownHostsPath := filepath.Join(t.TempDir(), "known_hosts")

	hostKey, err := generateTestHostKey()
	require.NoError(t, err)

	remoteAddr := &net.TCPAddr{IP: net.ParseIP("192.168.1.1"), Port: 22}

	require.NoError(t, addHostKeyToKnownHosts("example.com", remoteAddr, hostKey, knownHostsPath))

	content, err := os.ReadFile(knownHostsPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "example.com")
	require.Contains(t, string(content), "192.168.1.1")
	require.Contains(t, string(content), hostKey.Type())
}

func TestEnsureKnownHostsFile(t *testing.T) {
	knownHostsPath := filepath.Join(t.TempDir(), ".ssh", "known_hosts")

	require.NoError(t, ensureKnownHostsFile(knownHostsPath))

	info, err := os.Stat(knownHostsPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
