// Package hook provides types and functions for Claude Code hooks.
package hook

import (
	"encoding/json"
	"fmt"
	"io"
)

// Exit codes understood by Claude Code.
const (
	// ExitOK means nothing to do, or the check passed.
	ExitOK = 0
	// ExitInvalidInput means the hook was invoked with a payload it could not decode.
	ExitInvalidInput = 1
	// ExitBlock feeds stderr back to Claude as something it must act on.
	ExitBlock = 2
)

// PostToolUseInput represents the JSON input from Claude Code PostToolUse hooks.
//
// Only tool_input.file_path is required by the CSV hooks. The remaining fields
// are decoded for diagnostics and vary between tools (Edit, Write, Read, ...).
// A payload without tool_input or file_path decodes to an empty FilePath.
type PostToolUseInput struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
	ToolName       string `json:"tool_name"`
	ToolInput      struct {
		FilePath string `json:"file_path"`
	} `json:"tool_input"`
	ToolResponse struct {
		FilePath string `json:"filePath,omitempty"`
		Success  bool   `json:"success"`
	} `json:"tool_response"`
}

// FilePath returns the path the tool operated on, or "" if none was given.
func (in *PostToolUseInput) FilePath() string {
	if in == nil {
		return ""
	}
	return in.ToolInput.FilePath
}

// ReadPostToolUseInput reads all of r and parses it as PostToolUse hook input.
func ReadPostToolUseInput(r io.Reader) (*PostToolUseInput, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	var input PostToolUseInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}
	return &input, nil
}
