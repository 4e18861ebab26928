// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package iface

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/vmware/ifacepicker/pkg/ssh"
)

// Source supplies the raw listing output. Implementations own acquiring and
// releasing whatever produces it; callers read the stream to exhaustion and
// close it.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// DefaultSource lists interfaces on the local machine via `ip a`.
func DefaultSource() *ExecSource {
	return &ExecSource{Path: "ip", Args: []string{"a"}}
}

// ExecSource runs a local command and exposes its stdout.
type ExecSource struct {
	Path string
	Args []string
}

func (s *ExecSource) Name() string {
	return strings.TrimSpace(s.Path + " " + strings.Join(s.Args, " "))
}

func (s *ExecSource) Open() (io.ReadCloser, error) {
	cmd := exec.Command(s.Path, s.Args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open pipe for command %q: %w", s.Name(), err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start command %q: %w", s.Name(), err)
	}
	return &execPipe{ReadCloser: stdout, cmd: cmd}, nil
}

type execPipe struct {
	io.ReadCloser
	cmd *exec.Cmd
}

// Close releases the pipe and reaps the subprocess. Its exit status is
// irrelevant once the listing has been read.
func (p *execPipe) Close() error {
	_ = p.ReadCloser.Close()
	_ = p.cmd.Wait()
	return nil
}

// RemoteSource runs the listing command on a remote host. Each Open dials,
// runs, and disconnects, returning the buffered output.
type RemoteSource struct {
	Config  *ssh.Config
	Command string
}

func (s *RemoteSource) Name() string {
	return s.Command
}

func (s *RemoteSource) Open() (io.ReadCloser, error) {
	client, err := ssh.NewClient(s.Config)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", s.Config.Host, err)
	}
	defer client.Close()

	out, err := client.Run(s.Command)
	if err != nil {
		return nil, fmt.Errorf("run %q on %s: %w", s.Command, s.Config.Host, err)
	}
	return io.NopCloser(bytes.NewReader(out)), nil
}

// List opens the source, parses its output to exhaustion, and closes it on
// every path.
func List(src Source) ([]Entry, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Parse(rc)
}
