package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jcloud242/resale-radar/pkg/identify"
)

// IdentifyHandler parses vision/OCR provider payloads into item
// identifications.
type IdentifyHandler struct {
	chain *identify.Chain
}

// NewIdentifyHandler creates a new IdentifyHandler. A nil chain uses the
// default extractor ordering.
func NewIdentifyHandler(chain *identify.Chain) *IdentifyHandler {
	if chain == nil {
		chain = identify.DefaultChain()
	}
	return &IdentifyHandler{chain: chain}
}

// IdentifyInput is the request body for the identify endpoint.
type IdentifyInput struct {
	Body struct {
		Payload json.RawMessage `json:"payload,omitempty" doc:"Raw provider response payload (JSON or plain text)"`
	}
}

// IdentifyOutput is the response body for the identify endpoint.
type IdentifyOutput struct {
	Body identify.Identification
}

// Identify runs the payload through the extractor chain and returns the
// first successful identification.
func (h *IdentifyHandler) Identify(_ context.Context, input *IdentifyInput) (*IdentifyOutput, error) {
	if len(input.Body.Payload) == 0 {
		return nil, huma.Error422UnprocessableEntity("payload is required")
	}

	payload := input.Body.Payload
	// Provider responses arrive either as raw JSON or as a JSON string
	// holding plain text; unwrap the latter before matching.
	var text string
	if err := json.Unmarshal(payload, &text); err == nil {
		payload = []byte(text)
	}

	ident, err := h.chain.Extract(payload)
	if err != nil {
		if errors.Is(err, identify.ErrNoMatch) {
			return nil, huma.Error422UnprocessableEntity("payload did not match any known provider shape")
		}
		return nil, huma.Error500InternalServerError("identifying item: " + err.Error())
	}

	return &IdentifyOutput{Body: *ident}, nil
}

// RegisterIdentifyRoutes registers the identify endpoint with the Huma API.
func RegisterIdentifyRoutes(api huma.API, h *IdentifyHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "identify-item",
		Method:      http.MethodPost,
		Path:        "/api/v1/identify",
		Summary:     "Identify an item from a provider payload",
		Description: "Parses a vision or OCR provider response into a structured item identification.",
		Tags:        []string{"identify"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Identify)
}
