package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirelens/hirelens/internal/models"
)

// Extractor turns a free-text candidate-search query into a structured
// entity set. A (nil, nil) return is the null sentinel: the text is
// not a candidate-search query at all.
type Extractor interface {
	Extract(ctx context.Context, prompt string) (*models.EntitySet, error)
	Close() error
}

// decodeEntities parses raw model output. Models occasionally wrap the
// JSON in code fences or answer with a bare null; both are handled
// here so the providers stay thin.
func decodeEntities(raw string) (*models.EntitySet, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	if s == "" || strings.EqualFold(s, "null") {
		return nil, nil
	}

	var e models.EntitySet
	if err := json.Unmarshal([]byte(s), &e); err != nil {
		return nil, fmt.Errorf("decode entities: %w", err)
	}
	return &e, nil
}
