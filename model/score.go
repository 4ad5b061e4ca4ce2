package model

// MusicScore is the structured musical description produced by the language
// model. It is consumed read-only; numeric fields are clamped, never trusted.
type MusicScore struct {
	Title         string      `json:"title"`
	TempoBPM      int         `json:"tempo_bpm"`
	Key           string      `json:"key"`
	LengthBars    int         `json:"length_bars"`
	TimeSignature string      `json:"time_signature"`
	Melody        []NoteEvent `json:"melody"`
	Assumptions   []string    `json:"assumptions,omitempty"`
}

type NoteEvent struct {
	Pitch         string  `json:"pitch"`
	StartBeat     float64 `json:"start_beat"`
	DurationBeats float64 `json:"duration_beats"`
	Velocity      int     `json:"velocity"`
}
