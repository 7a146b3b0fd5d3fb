package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

// ExpandPath expands $VAR and ${VAR:-default} references and a leading ~ in
// path the way a shell would inside double quotes. env resolves variables;
// nil means the process environment. Command substitution is rejected.
func ExpandPath(path string, env func(string) string) (string, error) {
	if env == nil {
		env = os.Getenv
	}

	expanded, err := shell.Expand(path, env)
	if err != nil {
		return "", fmt.Errorf("expanding %q: %w", path, err)
	}

	if expanded == "~" || strings.HasPrefix(expanded, "~/") {
		home := env("HOME")
		if home == "" {
			if home, err = os.UserHomeDir(); err != nil {
				return "", fmt.Errorf("resolving home directory: %w", err)
			}
		}
		expanded = home + expanded[1:]
	}

	if expanded == "" {
		return "", fmt.Errorf("path %q expands to nothing", path)
	}
	return filepath.Clean(expanded), nil
}
