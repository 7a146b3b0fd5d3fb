package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapEnv(vars map[string]string) func(string) string {
	return func(name string) string { return vars[name] }
}

func TestExpandPath(t *testing.T) {
	env := mapEnv(map[string]string{
		"HOME":      "/home/dev",
		"LOG_DIR":   "/var/log/hooks",
		"WITH_DOTS": "/tmp/a/../b",
	})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Absolute path", "/tmp/csv.log", "/tmp/csv.log"},
		{"Tilde", "~/.claude/logs/csv-validator.log", "/home/dev/.claude/logs/csv-validator.log"},
		{"Bare tilde", "~", "/home/dev"},
		{"Variable", "$LOG_DIR/csv.log", "/var/log/hooks/csv.log"},
		{"Braced variable", "${HOME}/logs/csv.log", "/home/dev/logs/csv.log"},
		{"Default for unset variable", "${MISSING:-/opt}/csv.log", "/opt/csv.log"},
		{"Cleaned", "$WITH_DOTS//csv.log", "/tmp/b/csv.log"},
		{"Tilde not leading", "/data/~/csv.log", "/data/~/csv.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandPath(tt.input, env)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandPath_EmptyResult(t *testing.T) {
	_, err := ExpandPath("$UNSET", mapEnv(nil))
	assert.Error(t, err)
}
