package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/akyairhashvil/zenith/internal/config"
	"github.com/akyairhashvil/zenith/internal/util"
)

func promptForKey(prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("a passphrase is required but stdin is not a terminal")
	}
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

// newPassphrase asks for a passphrase twice and checks its strength, retrying
// up to MaxPassphraseAttempts times.
func (a *app) newPassphrase() (string, error) {
	var lastErr error
	for tries := 0; tries < config.MaxPassphraseAttempts; tries++ {
		pass, err := a.readPassphrase("Backup passphrase: ")
		if err != nil {
			return "", err
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			lastErr = fmt.Errorf("passphrase too weak: %w", err)
			fmt.Fprintln(os.Stderr, lastErr)
			continue
		}
		confirm, err := a.readPassphrase("Repeat passphrase: ")
		if err != nil {
			return "", err
		}
		if confirm != pass {
			lastErr = errors.New("passphrases do not match")
			fmt.Fprintln(os.Stderr, lastErr)
			continue
		}
		return pass, nil
	}
	return "", lastErr
}
