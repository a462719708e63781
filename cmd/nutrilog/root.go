package nutrilog

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	storePath   string
	backendName string
)

var rootCmd = &cobra.Command{
	Use:           "nutrilog",
	Short:         "nutrilog tracks meals, workouts, sleep and calorie goals",
	Long:          "nutrilog is a local-first nutrition log with daily summaries, a weekly calorie buffer and profile based targets.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the store file (env NUTRILOG_STORE)")
	rootCmd.PersistentFlags().StringVar(&backendName, "backend", "", "Store backend: sqlite, bolt or memory (env NUTRILOG_BACKEND)")
}
