package score

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jsphweid/musicability/model"
)

// StructuralError means the score is not even shaped right: required fields
// missing, melody empty, or the payload isn't a JSON object. Rendering never
// starts on a structurally invalid score.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "invalid score: " + e.Reason
}

var requiredFields = []string{
	"key", "length_bars", "melody", "tempo_bpm", "time_signature", "title",
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")
var anyObject = regexp.MustCompile(`(?s)(\{.*\})`)

// CleanResponse strips the code fences and surrounding prose a language model
// tends to wrap its JSON in.
func CleanResponse(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if strings.HasPrefix(raw, "{") {
		return raw
	}
	if m := anyObject.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return raw
}

// Parse decodes and validates a raw score payload.
func Parse(raw []byte) (model.MusicScore, error) {
	var blank model.MusicScore

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return blank, &StructuralError{Reason: "not a JSON object: " + err.Error()}
	}

	var missing []string
	for _, f := range requiredFields {
		if _, ok := fields[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return blank, &StructuralError{
			Reason: "missing fields: " + strings.Join(missing, ", "),
		}
	}

	var s model.MusicScore
	if err := json.Unmarshal(raw, &s); err != nil {
		return blank, &StructuralError{Reason: fmt.Sprintf("bad field types: %v", err)}
	}
	if len(s.Melody) == 0 {
		return blank, &StructuralError{Reason: "melody must be a non-empty list"}
	}
	return s, nil
}
