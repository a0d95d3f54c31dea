package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMissingAPIKey signals that no credential could be resolved from any
// non-interactive source.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set")

// ResolveAPIKey resolves the backend credential without blocking: an explicit
// value wins, then the OPENAI_API_KEY environment variable. Callers that may
// talk to a terminal can fall back to PromptAPIKey.
func ResolveAPIKey(explicit string) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

// PromptAPIKey asks the user for an API key on w and reads one line from r.
// An empty answer is an error; the caller decides whether that is fatal.
func PromptAPIKey(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "OpenAI API key not found in configuration or environment variables.")
	fmt.Fprint(w, "API Key: ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading API key: %w", err)
		}
		return "", ErrMissingAPIKey
	}

	key := strings.TrimSpace(scanner.Text())
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}
