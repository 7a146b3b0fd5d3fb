package main

import (
	"fmt"
	"io"
	"os"

	"github.com/krmcbride/claudecode-csv-hooks/pkg/csvcheck"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/hook"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/logging"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/outcomelog"
)

// config holds the resolved command-line and environment settings.
type config struct {
	LogPath    string
	Extensions []string
	Debug      bool
}

// run validates the file named in the hook payload read from stdin and
// returns the exit code to report to Claude Code.
func run(stdin io.Reader, stdout, stderr io.Writer, cfg config) int {
	log := logging.New(stderr, cfg.Debug)
	defer log.Sync() //nolint:errcheck // nothing useful to do on failure

	input, err := hook.ReadPostToolUseInput(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid JSON input: %v\n", err)
		return hook.ExitInvalidInput
	}

	filePath := input.FilePath()
	if !csvcheck.HasExtension(filePath, cfg.Extensions) {
		log.Debugw("skipping file", "tool", input.ToolName, "path", filePath)
		return hook.ExitOK
	}

	// Missing files are reported but not logged; only validation attempts are.
	if _, err := os.Stat(filePath); err != nil {
		log.Debugw("stat failed", "path", filePath, "error", err)
		fmt.Fprintf(stderr, "File not found: %s\n", filePath)
		return hook.ExitBlock
	}

	result := csvcheck.Validate(filePath)
	log.Debugw("validated file", "path", filePath, "ok", result.OK, "rows", result.Rows, "columns", result.Columns)

	if err := outcomelog.New(cfg.LogPath).Record(result.OK, filePath, result.Message); err != nil {
		log.Warnw("failed to record result", "log", cfg.LogPath, "error", err)
	}

	if result.OK {
		fmt.Fprintln(stdout, result.Message)
		return hook.ExitOK
	}

	fmt.Fprintf(stderr, "Resolve this CSV error in %s:\n%s\n", filePath, result.Message)
	return hook.ExitBlock
}
