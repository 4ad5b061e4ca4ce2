package model

type GenerateRequestBody struct {
	Text string `json:"text"`
}

// RenderResponse carries both rendered artifacts; the byte fields serialize
// as base64 via encoding/json.
type RenderResponse struct {
	Id              string   `json:"id"`
	Title           string   `json:"title"`
	DroppedPitches  []string `json:"dropped_pitches,omitempty"`
	DurationSeconds float64  `json:"duration_seconds"`
	Midi            []byte   `json:"midi"`
	Wav             []byte   `json:"wav"`
}

type GenerateResponse struct {
	Score MusicScore `json:"score"`
	RenderResponse
}

type TranscribeResponse struct {
	Text            string  `json:"text"`
	DurationSeconds float64 `json:"duration_seconds"`
}

type DurationResponse struct {
	DurationSeconds float64 `json:"duration_seconds"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
