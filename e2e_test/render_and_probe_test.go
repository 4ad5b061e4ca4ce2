package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/musicability/cmd"
	"github.com/jsphweid/musicability/model"
	"github.com/stretchr/testify/assert"
)

func createRenderReqBody(s model.MusicScore) io.Reader {
	data, err := json.Marshal(s)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func testScore() model.MusicScore {
	return model.MusicScore{
		Title:         "Ode",
		TempoBPM:      90,
		Key:           "C major",
		LengthBars:    2,
		TimeSignature: "4/4",
		Melody: []model.NoteEvent{
			{Pitch: "C4", StartBeat: 0, DurationBeats: 1, Velocity: 80},
			{Pitch: "E4", StartBeat: 1, DurationBeats: 1, Velocity: 80},
		},
	}
}

func TestRenderE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/render", createRenderReqBody(testScore()))
	w := httptest.NewRecorder()
	cmd.HandleRender(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var rendered model.RenderResponse
	err := json.Unmarshal(respBody, &rendered)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(rendered.Id)
	assert.Equal("Ode", rendered.Title)
	assert.Empty(rendered.DroppedPitches)
	assert.Equal([]byte("MThd"), rendered.Midi[:4])
	assert.Equal([]byte("RIFF"), rendered.Wav[:4])
	// two beats at 90 bpm plus the release tail, probed from the wav itself
	assert.InDelta(1.6, rendered.DurationSeconds, 0.11)
}

func TestRenderDropsBadPitchesButSucceedsE2E(t *testing.T) {
	s := testScore()
	s.Melody[1].Pitch = "Z9"

	req := httptest.NewRequest(http.MethodPost, "/render", createRenderReqBody(s))
	w := httptest.NewRecorder()
	cmd.HandleRender(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var rendered model.RenderResponse
	err := json.Unmarshal(respBody, &rendered)
	if err != nil {
		panic(err.Error())
	}
	assert.Equal([]string{"Z9"}, rendered.DroppedPitches)
	assert.Equal([]byte("MThd"), rendered.Midi[:4])
}

func TestRenderRejectsStructurallyInvalidScoreE2E(t *testing.T) {
	body := bytes.NewReader([]byte(`{"title": "no melody"}`))
	req := httptest.NewRequest(http.MethodPost, "/render", body)
	w := httptest.NewRecorder()
	cmd.HandleRender(w, req)

	assert.Equal(t, 422, w.Result().StatusCode)
}

func TestDurationProbeE2E(t *testing.T) {
	// render first, then probe the rendered wav through the duration endpoint
	req := httptest.NewRequest(http.MethodPost, "/render", createRenderReqBody(testScore()))
	w := httptest.NewRecorder()
	cmd.HandleRender(w, req)

	var rendered model.RenderResponse
	respBody, _ := io.ReadAll(w.Result().Body)
	if err := json.Unmarshal(respBody, &rendered); err != nil {
		panic(err.Error())
	}

	req = httptest.NewRequest(http.MethodPost, "/duration", bytes.NewReader(rendered.Wav))
	w = httptest.NewRecorder()
	cmd.HandleDuration(w, req)

	resp := w.Result()
	respBody, _ = io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var probed model.DurationResponse
	if err := json.Unmarshal(respBody, &probed); err != nil {
		panic(err.Error())
	}
	assert.Equal(rendered.DurationSeconds, probed.DurationSeconds)
}
