package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "musicability",
	Short: "Turns musical descriptions into MIDI and audio",
	Long:  `Turns structured musical descriptions into standard MIDI files and rendered audio.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
