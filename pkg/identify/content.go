package identify

import (
	"encoding/json"
	"strings"

	domain "github.com/jcloud242/resale-radar/pkg/types"
)

// identifyJSON is the structured shape models are prompted to return
// inside their text content.
type identifyJSON struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	UPC      string `json:"upc"`
	Category string `json:"category"`
}

var categoryNames = map[string]domain.Category{
	"video_game": domain.CategoryVideoGame,
	"game":       domain.CategoryVideoGame,
	"console":    domain.CategoryConsole,
	"accessory":  domain.CategoryAccessory,
	"media":      domain.CategoryMedia,
	"other":      domain.CategoryOther,
}

// parseContent turns extracted text content into an Identification.
// The text is ideally a JSON object ({"title", "platform", "upc",
// "category"}), possibly wrapped in a markdown code fence; anything
// else falls back to the first non-empty line as the title.
func parseContent(text string) *Identification {
	trimmed := stripFences(strings.TrimSpace(text))

	var parsed identifyJSON
	if err := json.Unmarshal([]byte(trimmed), &parsed); err == nil && parsed.Title != "" {
		return &Identification{
			Title:    strings.TrimSpace(parsed.Title),
			Platform: strings.TrimSpace(parsed.Platform),
			UPC:      strings.TrimSpace(parsed.UPC),
			Category: parseCategory(parsed.Category),
			RawText:  text,
		}
	}

	return &Identification{
		Title:   firstLine(trimmed),
		RawText: text,
	}
}

func parseCategory(s string) domain.Category {
	if c, ok := categoryNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c
	}
	if s == "" {
		return ""
	}
	return domain.CategoryOther
}

// stripFences removes a surrounding markdown code fence, with or
// without a language tag.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// Drop the language tag line ("json", "text", or empty).
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func firstLine(s string) string {
	for line := range strings.Lines(s) {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}
