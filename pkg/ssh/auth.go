// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package ssh

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// Auth represents ssh auth methods.
type Auth []ssh.AuthMethod

// configureAuth prefers password auth when a password is set, falling back
// to private key auth.
func configureAuth(password, privateKeyFile, passphrase string) (Auth, error) {
	if password != "" {
		return Auth{ssh.Password(password)}, nil
	}

	if privateKeyFile != "" {
		signer, err := getSigner(privateKeyFile, passphrase)
		if err != nil {
			return nil, err
		}
		return Auth{ssh.PublicKeys(signer)}, nil
	}

	return nil, fmt.Errorf("no private key/password found to configure SSH auth")
}

// getSigner returns ssh signer from private key file.
func getSigner(prvFile string, passphrase string) (ssh.Signer, error) {
	privateKey, err := os.ReadFile(prvFile)
	if err != nil {
		return nil, fmt.Errorf("could not read private key: %w", err)
	}

	if passphrase != "" {
		return ssh.ParsePrivateKeyWithPassphrase(privateKey, []byte(passphrase))
	}
	return ssh.ParsePrivateKey(privateKey)
}
