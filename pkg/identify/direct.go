package identify

import (
	"encoding/json"
)

// DirectExtractor parses a payload that already is the structured
// identification object, with no provider envelope around it.
type DirectExtractor struct{}

// Name returns the extractor name.
func (*DirectExtractor) Name() string {
	return "direct"
}

// Extract implements Extractor.
func (*DirectExtractor) Extract(payload []byte) (*Identification, error) {
	var parsed identifyJSON
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, ErrShapeMismatch
	}
	if parsed.Title == "" {
		return nil, ErrShapeMismatch
	}

	return &Identification{
		Title:    parsed.Title,
		Platform: parsed.Platform,
		UPC:      parsed.UPC,
		Category: parseCategory(parsed.Category),
	}, nil
}
