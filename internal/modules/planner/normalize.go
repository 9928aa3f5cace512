// README: Turns raw model output into a canonical TripPlan.
package planner

import (
	"encoding/json"
	"strings"
)

// cleanModelOutput removes markdown code fences if present (e.g. ```json ... ```)
// and trims surrounding whitespace.
func cleanModelOutput(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Normalize parses raw model output into a TripPlan. Parse failures come
// back as a *ParseError holding a truncated excerpt of the raw text; the
// plan is never guessed at.
func Normalize(raw string) (*TripPlan, error) {
	cleaned := cleanModelOutput(raw)

	var plan TripPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return nil, newParseError(raw, err)
	}

	EnhanceImages(&plan)
	return &plan, nil
}
