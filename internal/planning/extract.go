// internal/planning/extract.go
package planning

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject means the model text contained nothing parseable.
var ErrNoJSONObject = errors.New("no JSON object in model output")

// ExtractJSONObject pulls the JSON object out of raw model text.
// Models wrap output in markdown fences or prose despite instructions,
// so everything outside the outermost braces is discarded.
func ExtractJSONObject(text string) (map[string]interface{}, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, ErrNoJSONObject
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &obj); err != nil {
		return nil, ErrNoJSONObject
	}
	return obj, nil
}
