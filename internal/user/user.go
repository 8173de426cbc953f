// Package user guesses a default account name from the operating system
package user

import (
	"os"
	"os/user"
	"strings"
)

// SuggestedUsername returns the login name of the OS user, used to prefill
// the account forms. It falls back to $USER and returns "" when neither is
// known.
func SuggestedUsername() string {
	name := os.Getenv("USER")
	if current, err := user.Current(); err == nil {
		name = current.Username
	}
	return localName(name)
}

// localName drops a DOMAIN\ prefix and surrounding whitespace
func localName(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSpace(name)
}
