// Package prompts provides the mentor's externalized LLM prompt
// templates, stored as JSON and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed mentor.json
var promptFile embed.FS

var (
	loadOnce sync.Once
	prompts  map[string]string
	loadErr  error
)

// Get retrieves a prompt template by key ("persona", "roadmap",
// "resources"). Returns an error if the key is not found.
func Get(key string) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}
	prompt, exists := prompts[key]
	if !exists {
		return "", fmt.Errorf("prompt key %q not found in mentor.json", key)
	}
	return prompt, nil
}

// MustGet retrieves a prompt by key, panicking if not found. The
// embedded file is fixed at compile time, so a miss is a programming
// error.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format replaces template placeholders in the form {{.Key}} with
// values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", key)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func load() {
	data, err := promptFile.ReadFile("mentor.json")
	if err != nil {
		loadErr = fmt.Errorf("failed to read mentor.json: %w", err)
		return
	}
	if err := json.Unmarshal(data, &prompts); err != nil {
		loadErr = fmt.Errorf("failed to parse mentor.json: %w", err)
	}
}
