package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/notes-api/app/cmd/schema"
	"github.com/ribgsilva/notes-api/platform/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "notes",
	Short:        "Operational commands of the notes api",
	SilenceUsage: true,
}

// log is quiet unless --verbose is set
func log() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	l, err := logger.New("Notes-Cmd")
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.AddCommand(schema.Command(log))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
