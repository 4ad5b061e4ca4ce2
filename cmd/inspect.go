package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/musicability/midi"
	"github.com/jsphweid/musicability/util"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Inspects a midi file",
	Long:  `Inspects a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	s, err := midi.Read(util.ReadFileOrPanic(path))
	if err != nil {
		panic("Could not parse midi file because: " + err.Error())
	}

	fmt.Printf("timeFormat: %v\n", s.TimeFormat)
	fmt.Printf("tracks: %v\n", len(s.Tracks))
	for i, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			var bpm float64
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				fmt.Printf("track %v tick %v: note on %v vel %v\n", i, absTicks, key, velocity)
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				fmt.Printf("track %v tick %v: note off %v\n", i, absTicks, key)
			case event.Message.GetMetaTempo(&bpm):
				fmt.Printf("track %v tick %v: tempo %.2f bpm\n", i, absTicks, bpm)
			default:
				fmt.Printf("track %v tick %v: %v\n", i, absTicks, event.Message)
			}
		}
	}
}
