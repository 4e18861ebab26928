// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package ssh

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// default constants
const (
	DefaultTimeout = 20 * time.Second
	DefaultPort    = 22
)

// Client represents ssh client.
type Client struct {
	*ssh.Client
}

// Config holds what is needed to reach one host. A zero Port or Timeout
// falls back to the default.
type Config struct {
	User                 string
	Host                 string
	Port                 int
	Timeout              time.Duration
	Password             string
	PrivateKeyPath       string
	PrivateKeyPassphrase string
	hostKeyCallBack      ssh.HostKeyCallback
}

func (c *Config) SetHostKeyCallback(hostKeyCallBack ssh.HostKeyCallback) {
	c.hostKeyCallBack = hostKeyCallBack
}

// NewClient dials the configured host. Auth comes from the password or the
// private key; the host key callback defaults to the interactive
// known_hosts flow.
func NewClient(config *Config) (*Client, error) {
	auth, err := configureAuth(config.Password, config.PrivateKeyPath, config.PrivateKeyPassphrase)
	if err != nil {
		return nil, errors.New("failed to configure auth: " + err.Error())
	}

	hostKeyCallback, err := configureHostKeyCallback(config.hostKeyCallBack)
	if err != nil {
		return nil, errors.New("failed to configure hostKeyCallBack: " + err.Error())
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	port := config.Port
	if port == 0 {
		port = DefaultPort
	}

	conn, err := ssh.Dial("tcp", net.JoinHostPort(config.Host, fmt.Sprint(port)), &ssh.ClientConfig{
		User:            config.User,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	})
	if err != nil {
		return nil, err
	}
	return &Client{Client: conn}, nil
}

// Run executes cmd in a fresh session and returns its combined output.
func (c Client) Run(cmd string) ([]byte, error) {
	sess, err := c.NewSession()
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.CombinedOutput(cmd)
}

// Close client net connection.
func (c Client) Close() error {
	return c.Client.Close()
}

// Upload writes data to remotePath with the given mode. When the direct
// sftp write is denied it retries through a temporary path and sudo.
func (c Client) Upload(data []byte, remotePath string, mode os.FileMode) error {
	if err := c.sftpWrite(data, remotePath, mode); err != nil {
		if isPermissionDenied(err) {
			return c.sudoUpload(data, remotePath, mode)
		}
		return err
	}
	return nil
}

func (c Client) sftpWrite(data []byte, remotePath string, mode os.FileMode) error {
	ftp, err := sftp.NewClient(c.Client)
	if err != nil {
		return err
	}
	defer ftp.Close()

	remote, err := ftp.Create(remotePath)
	if err != nil {
		return err
	}
	defer remote.Close()

	if _, err := io.Copy(remote, bytes.NewReader(data)); err != nil {
		return err
	}
	return remote.Chmod(mode)
}

// sudoUpload stages the data under /tmp and moves it into place with sudo,
// for destinations the login user cannot write directly.
func (c Client) sudoUpload(data []byte, remotePath string, mode os.FileMode) error {
	tempPath := filepath.Join("/tmp", fmt.Sprintf("ifacepicker_%d_%s", time.Now().UnixNano(), filepath.Base(remotePath)))

	if err := c.sftpWrite(data, tempPath, mode); err != nil {
		return fmt.Errorf("failed to upload to temp path %s: %w", tempPath, err)
	}
	// ensure temporary file is cleaned up
	defer c.Run(fmt.Sprintf("sudo rm -f %s", tempPath))

	if _, err := c.Run(fmt.Sprintf("sudo mv %s %s", tempPath, remotePath)); err != nil {
		return fmt.Errorf("failed to sudo mv from %s to %s: %w", tempPath, remotePath, err)
	}

	if _, err := c.Run(fmt.Sprintf("sudo chmod %o %s", mode.Perm(), remotePath)); err != nil {
		return fmt.Errorf("failed to sudo chmod on %s: %w", remotePath, err)
	}

	return nil
}

func isPermissionDenied(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}

	var statusErr *sftp.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == uint32(sftp.ErrSshFxPermissionDenied) {
		return true
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission denied") || strings.Contains(msg, "ssh_fx_permission_denied")
}
