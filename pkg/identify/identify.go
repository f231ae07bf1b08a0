// Package identify parses vision and OCR provider response payloads into
// item identifications. It never calls the providers themselves: callers
// hand a raw response body to a Chain of typed extractors, each of which
// attempts one known response shape.
package identify

import (
	"errors"
	"fmt"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// ErrShapeMismatch is returned by an Extractor when the payload does not
// match the response shape it knows how to parse. The chain treats it as
// a signal to try the next strategy.
var ErrShapeMismatch = errors.New("payload does not match extractor shape")

// ErrNoMatch is returned by the Chain when no extractor could parse the payload.
var ErrNoMatch = errors.New("no extractor matched payload")

// Identification is the structured result of parsing a provider response.
type Identification struct {
	Title    string          `json:"title"`
	Platform string          `json:"platform,omitempty"`
	UPC      string          `json:"upc,omitempty"`
	Category domain.Category `json:"category,omitempty"`
	RawText  string          `json:"raw_text,omitempty"`
	Source   string          `json:"source"`
}

// Extractor parses one known provider response shape.
type Extractor interface {
	Name() string
	Extract(payload []byte) (*Identification, error)
}

// Chain tries extractors in order and returns the first successful
// identification. Strategies whose shape does not match are skipped.
type Chain struct {
	extractors []Extractor
}

// NewChain creates a chain from the given extractors, tried in order.
func NewChain(extractors ...Extractor) *Chain {
	return &Chain{extractors: extractors}
}

// DefaultChain returns a chain covering the supported provider shapes.
// The plain-text strategy accepts anything, so it goes last.
func DefaultChain() *Chain {
	return NewChain(
		&GeminiExtractor{},
		&OpenAIExtractor{},
		&OCRSpaceExtractor{},
		&DirectExtractor{},
		&PlainTextExtractor{},
	)
}

// Extract runs the chain over the payload.
func (c *Chain) Extract(payload []byte) (*Identification, error) {
	var errs []error
	for _, e := range c.extractors {
		id, err := e.Extract(payload)
		if err == nil {
			id.Source = e.Name()
			return id, nil
		}
		if errors.Is(err, ErrShapeMismatch) {
			continue
		}
		errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrNoMatch, errors.Join(errs...))
	}
	return nil, ErrNoMatch
}
