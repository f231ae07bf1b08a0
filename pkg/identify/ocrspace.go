package identify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OCRSpaceExtractor parses the OCR.space response shape:
// ParsedResults[].ParsedText.
type OCRSpaceExtractor struct{}

type ocrSpaceResponse struct {
	ParsedResults []ocrSpaceResult `json:"ParsedResults"`
	IsErrored     bool             `json:"IsErroredOnProcessing"`
	ErrorMessage  any              `json:"ErrorMessage"` // string or []string
}

type ocrSpaceResult struct {
	ParsedText string `json:"ParsedText"`
}

// Name returns the extractor name.
func (*OCRSpaceExtractor) Name() string {
	return "ocrspace"
}

// Extract implements Extractor.
func (*OCRSpaceExtractor) Extract(payload []byte) (*Identification, error) {
	var resp ocrSpaceResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, ErrShapeMismatch
	}
	if len(resp.ParsedResults) == 0 {
		if resp.IsErrored {
			return nil, fmt.Errorf("provider reported error: %v", resp.ErrorMessage)
		}
		return nil, ErrShapeMismatch
	}

	var sb strings.Builder
	for _, r := range resp.ParsedResults {
		sb.WriteString(r.ParsedText)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("parsed results contain no text")
	}

	// OCR output is free text, never the structured JSON shape.
	return &Identification{
		Title:   firstLine(text),
		RawText: text,
	}, nil
}
