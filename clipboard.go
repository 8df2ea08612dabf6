package main

import (
	"encoding/json"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// yankDocument puts the current graph on the system clipboard as JSON, in the
// same shape as a saved file.
func yankDocument(e *Editor) error {
	data, err := json.MarshalIndent(e.GetGraph(), "", "  ")
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

// pasteTaskName reads the clipboard and reduces it to a single task name: the
// first non-empty line after cleaning.
func pasteTaskName() (string, error) {
	text, err := readClipboardText()
	if err != nil {
		return "", err
	}
	for _, line := range strings.Split(cleanClipboardText(text), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			return name, nil
		}
	}
	return "", nil
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
		if output, err := exec.Command("pbpaste").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText strips control characters and normalizes line endings.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := result.String()
	normalized = strings.ReplaceAll(normalized, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized
}
