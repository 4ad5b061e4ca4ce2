package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/foundry"
	"github.com/jsphweid/musicability/midi"
	"github.com/jsphweid/musicability/model"
	"github.com/jsphweid/musicability/schedule"
	"github.com/jsphweid/musicability/score"
	"github.com/jsphweid/musicability/speech"
	"github.com/jsphweid/musicability/synth"
	"github.com/jsphweid/musicability/wav"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func renderScore(s model.MusicScore) model.RenderResponse {
	events, dropped := schedule.Build(s.Melody, constants.TicksPerBeat)
	midiBytes := midi.Encode(s.TempoBPM, events)
	wavBytes, _ := synth.Synthesize(s, constants.DefaultSampleRate)

	return model.RenderResponse{
		Id:              uuid.New().String(),
		Title:           s.Title,
		DroppedPitches:  dropped,
		DurationSeconds: wav.Duration(wavBytes),
		Midi:            midiBytes,
		Wav:             wavBytes,
	}
}

func HandleRender(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	s, err := score.Parse(reqBody)
	if err != nil {
		http.Error(w, err.Error(), 422)
		return
	}

	json.NewEncoder(w).Encode(renderScore(s))
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.GenerateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil || input.Text == "" {
		http.Error(w, "Body must be JSON with a non-empty text field", 400)
		return
	}

	s, err := foundry.GenerateScore(input.Text)
	if err != nil {
		http.Error(w, err.Error(), 502)
		return
	}

	json.NewEncoder(w).Encode(model.GenerateResponse{
		Score:          s,
		RenderResponse: renderScore(s),
	})
}

func HandleTranscribe(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	text, err := speech.Transcribe(audio, r.URL.Query().Get("language"))
	if err != nil {
		http.Error(w, err.Error(), 502)
		return
	}

	json.NewEncoder(w).Encode(model.TranscribeResponse{
		Text:            text,
		DurationSeconds: wav.Duration(audio),
	})
}

func HandleDuration(w http.ResponseWriter, r *http.Request) {
	audio, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	json.NewEncoder(w).Encode(model.DurationResponse{
		DurationSeconds: wav.Duration(audio),
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/render", HandleRender).Methods("POST")
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/transcribe", HandleTranscribe).Methods("POST")
	router.HandleFunc("/duration", HandleDuration).Methods("POST")

	fmt.Printf("Listening on :8080\n")
	log.Fatal(http.ListenAndServe(":8080", cors.Default().Handler(router)))
}
