// Package main implements a Claude Code PostToolUse hook that validates CSV files after editing.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krmcbride/claudecode-csv-hooks/pkg/csvcheck"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/hook"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/outcomelog"
	"github.com/krmcbride/claudecode-csv-hooks/pkg/utils"
)

const envPrefix = "CSV_VALIDATOR"

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	exitCode := hook.ExitOK
	cmd := newRootCommand(stdin, stdout, stderr, &exitCode)
	if args == nil {
		args = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return hook.ExitInvalidInput
	}
	return exitCode
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer, exitCode *int) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "csv-validate",
		Short: "Validate CSV files after Claude Code edits them",
		Long: `csv-validate: CSV validator for Claude Code PostToolUse hooks

Reads the hook payload from stdin and, when tool_input.file_path names a CSV
file, checks that the file still parses. Results are appended to a log file.

Exit codes:
  0  not a CSV file, or the file is valid
  1  the payload on stdin is not valid JSON
  2  the file is missing or does not parse (stderr is fed back to Claude)

CLAUDE CODE CONFIGURATION:
Add to your Claude Code settings.json:

{
  "hooks": {
    "PostToolUse": [
      {
        "matcher": "Read|Edit|Write",
        "hooks": [{"type": "command", "command": "/path/to/csv-validate"}]
      }
    ]
  }
}

Every flag can also be set through the environment, e.g. CSV_VALIDATOR_LOG.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			*exitCode = run(stdin, stdout, stderr, cfg)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.String("log", outcomelog.DefaultPath, "Result log file (~ and $VAR are expanded)")
	flags.String("ext", ".csv", "Comma-separated file extensions to validate")
	flags.Bool("debug", false, "Write diagnostic logs to stderr")
	for _, name := range []string{"log", "ext", "debug"} {
		_ = v.BindPFlag(name, flags.Lookup(name)) //nolint:errcheck // flag is defined above
	}

	return cmd
}

func loadConfig(v *viper.Viper) (config, error) {
	logPath, err := utils.ExpandPath(v.GetString("log"), nil)
	if err != nil {
		return config{}, fmt.Errorf("invalid log path: %w", err)
	}

	extensions := csvcheck.NormalizeExtensions(utils.ParseCommaSeparated(v.GetString("ext")))
	if len(extensions) == 0 {
		return config{}, fmt.Errorf("no file extensions configured")
	}

	return config{
		LogPath:    logPath,
		Extensions: extensions,
		Debug:      v.GetBool("debug"),
	}, nil
}
