package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jsphweid/musicability/constants"
	"github.com/jsphweid/musicability/midi"
	"github.com/jsphweid/musicability/model"
	"github.com/jsphweid/musicability/schedule"
	"github.com/jsphweid/musicability/score"
	"github.com/jsphweid/musicability/storage"
	"github.com/jsphweid/musicability/synth"
	"github.com/jsphweid/musicability/util"
	"github.com/jsphweid/musicability/wav"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <score.json>",
	Short: "Renders a score file to .mid and .wav",
	Long:  `Renders a score file to .mid and .wav`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		RenderScoreFile(args[0])
	},
}

func RenderScoreFile(path string) {
	s, err := score.Parse(util.ReadFileOrPanic(path))
	if err != nil {
		panic("Could not parse score because: " + err.Error())
	}
	writeArtifacts(s)
}

// writeArtifacts renders both artifacts for a validated score and writes them
// to the output dir under a fresh id, uploading them when a bucket is set.
func writeArtifacts(s model.MusicScore) (midiPath string, wavPath string) {
	events, dropped := schedule.Build(s.Melody, constants.TicksPerBeat)
	midiBytes := midi.Encode(s.TempoBPM, events)
	wavBytes, _ := synth.Synthesize(s, constants.DefaultSampleRate)

	outDir := constants.GetOutDir()
	util.EnsureOutputDir(outDir)

	id := uuid.New().String()
	midiPath = filepath.Join(outDir, id+".mid")
	wavPath = filepath.Join(outDir, id+".wav")
	util.WriteFileOrPanic(midiPath, midiBytes)
	util.WriteFileOrPanic(wavPath, wavBytes)

	fmt.Printf("Rendered %v (%v events, %.1fs of audio)\n",
		s.Title, len(events), wav.Duration(wavBytes))
	fmt.Printf("  midi: %v\n", midiPath)
	fmt.Printf("  wav:  %v\n", wavPath)
	for _, token := range dropped {
		fmt.Printf("  dropped unparseable pitch: %v\n", token)
	}

	if constants.GetRenderBucket() != "" {
		if err := storage.UploadArtifact(id+".mid", midiBytes, "audio/midi"); err != nil {
			fmt.Printf("Skipping midi upload because: %v\n", err)
		}
		if err := storage.UploadArtifact(id+".wav", wavBytes, "audio/wav"); err != nil {
			fmt.Printf("Skipping wav upload because: %v\n", err)
		}
	}
	return midiPath, wavPath
}
