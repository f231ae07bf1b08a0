package identify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// OpenAIExtractor parses the OpenAI chat completions response shape:
// choices[0].message.content. Compatible providers (vLLM, LM Studio,
// OpenRouter) share it.
type OpenAIExtractor struct{}

type openAIResponse struct {
	Choices []openAIChoice `json:"choices"`
}

type openAIChoice struct {
	Message openAIMessage `json:"message"`
}

type openAIMessage struct {
	Content string `json:"content"`
}

// Name returns the extractor name.
func (*OpenAIExtractor) Name() string {
	return "openai"
}

// Extract implements Extractor.
func (*OpenAIExtractor) Extract(payload []byte) (*Identification, error) {
	var resp openAIResponse
	if err := json.Unmarshal(payload, &resp); err != nil {
		return nil, ErrShapeMismatch
	}
	if len(resp.Choices) == 0 {
		return nil, ErrShapeMismatch
	}

	text := resp.Choices[0].Message.Content
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("choice has empty message content")
	}

	return parseContent(text), nil
}
