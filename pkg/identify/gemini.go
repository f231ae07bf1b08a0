package identify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GeminiExtractor parses the Gemini generateContent response shape:
// candidates[0].content.parts[].text.
type GeminiExtractor struct{}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

// Name returns the extractor name.
func (*GeminiExtractor) Name() string {
	return "gemini"
}

// Extract implements Extractor.
func (*GeminiExtractor) Extract(payload []byte) (*Identification, error) {
	var resp geminiResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, ErrShapeMismatch
	}
	if len(resp.Candidates) == 0 {
		return nil, ErrShapeMismatch
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("candidate has no text parts")
	}

	return parseContent(text), nil
}
