package identify

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// PlainTextExtractor treats the payload as raw text. It accepts any
// valid UTF-8 payload with printable content, so it must be the last
// strategy in a chain.
type PlainTextExtractor struct{}

// Name returns the extractor name.
func (*PlainTextExtractor) Name() string {
	return "plaintext"
}

// Extract implements Extractor.
func (*PlainTextExtractor) Extract(payload []byte) (*Identification, error) {
	if !utf8.Valid(payload) {
		return nil, ErrShapeMismatch
	}

	text := string(payload)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrShapeMismatch
	}

	// A payload that parses as a JSON object or array is a structured
	// response some other strategy should have handled, not free text.
	if (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
		json.Valid(payload) {
		return nil, ErrShapeMismatch
	}

	return parseContent(text), nil
}
