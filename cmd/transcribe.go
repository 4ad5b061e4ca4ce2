package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/musicability/speech"
	"github.com/jsphweid/musicability/util"
	"github.com/jsphweid/musicability/wav"
)

var transcribeLanguage string

func init() {
	transcribeCmd.Flags().StringVar(&transcribeLanguage, "language",
		speech.DefaultLanguage, "recognition language")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <recording.wav>",
	Short: "Transcribes a recorded instruction to text",
	Long:  `Transcribes a recorded instruction to text`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		transcribe(args[0])
	},
}

func transcribe(path string) {
	audio := util.ReadFileOrPanic(path)
	fmt.Printf("Recording length: %.1fs\n", wav.Duration(audio))

	text, err := speech.Transcribe(audio, transcribeLanguage)
	if err != nil {
		panic("Could not transcribe because: " + err.Error())
	}
	fmt.Printf("Recognized text: %v\n", text)
}
