package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <score.json>",
	Short: "Re-renders a score file whenever it changes",
	Long:  `Re-renders a score file whenever it changes`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		watch(args[0])
	},
}

func watch(path string) {
	info, err := os.Stat(path)
	if err != nil {
		panic("Could not stat score file because: " + err.Error())
	}
	lastMod := info.ModTime()

	RenderScoreFile(path)
	fmt.Printf("Watching %v for changes...\n", path)

	// editors fire several writes in a row, collapse them into one render
	debounced := debounce.New(500 * time.Millisecond)
	for {
		time.Sleep(250 * time.Millisecond)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			debounced(func() {
				RenderScoreFile(path)
			})
		}
	}
}
