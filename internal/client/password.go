package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// PasswordEnv holds the password for non-interactive use.
const PasswordEnv = "SEALTABLE_PASSWORD"

// NewPasswordSource reads the password from PasswordEnv, or prompts on the
// terminal behind in with echo disabled. Prompts go to promptOut.
func NewPasswordSource(in *os.File, promptOut io.Writer) PasswordSource {
	return func(prompt string) (string, error) {
		if pw, ok := os.LookupEnv(PasswordEnv); ok && pw != "" {
			return pw, nil
		}

		fd := int(in.Fd())
		if !term.IsTerminal(fd) {
			return "", ErrNoPassword
		}

		fmt.Fprint(promptOut, prompt)
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(promptOut)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}

		password := strings.TrimRight(string(pw), "\r\n")
		if password == "" {
			return "", ErrNoPassword
		}
		return password, nil
	}
}

// StaticPassword always returns password.
func StaticPassword(password string) PasswordSource {
	return func(string) (string, error) {
		return password, nil
	}
}
