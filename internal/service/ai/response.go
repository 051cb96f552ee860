package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedResponse marks model output that is not a JSON object.
	ErrMalformedResponse = errors.New("malformed model response")
	// ErrMissingKey marks a JSON object lacking the key a stage requires.
	ErrMissingKey = errors.New("missing response key")
)

// DecodeResponse parses raw model output into a JSON object. Markdown code
// fences around the payload are tolerated since some models add them even
// when told not to.
func DecodeResponse(raw string) (map[string]json.RawMessage, error) {
	trimmed := stripFences(strings.TrimSpace(raw))
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response", ErrMalformedResponse)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return obj, nil
}

// ExtractString returns the string value under key.
func ExtractString(obj map[string]json.RawMessage, key string) (string, error) {
	raw, ok := obj[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%w: key %q is not a string: %v", ErrMalformedResponse, key, err)
	}
	return s, nil
}

// ExtractStringList returns the list of strings under key.
func ExtractStringList(obj map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingKey, key)
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("%w: key %q is not a string list: %v", ErrMalformedResponse, key, err)
	}
	return list, nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := strings.TrimPrefix(s, "```")
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		rest = rest[idx+1:]
	}
	rest = strings.TrimSuffix(strings.TrimSpace(rest), "```")
	return strings.TrimSpace(rest)
}
