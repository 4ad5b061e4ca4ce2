package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/musicability/foundry"
)

func init() {
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <instruction...>",
	Short: "Generates a melody from a text instruction and renders it",
	Long:  `Generates a melody from a text instruction and renders it`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			panic("Need an instruction...")
		}
		generate(strings.Join(args, " "))
	},
}

func generate(instruction string) {
	fmt.Printf("Asking the model for a melody...\n")
	s, err := foundry.GenerateScore(instruction)
	if err != nil {
		panic("Could not generate a score because: " + err.Error())
	}

	fmt.Printf("Title: %v\n", s.Title)
	fmt.Printf("Key: %v, Tempo: %v BPM, %v bars of %v\n",
		s.Key, s.TempoBPM, s.LengthBars, s.TimeSignature)
	for _, a := range s.Assumptions {
		fmt.Printf("  assumption: %v\n", a)
	}

	writeArtifacts(s)
}
