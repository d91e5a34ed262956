package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/graphgauge/graphgauge/pkg/engine"
	"github.com/graphgauge/graphgauge/pkg/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <snapshot>",
	Short: "Run a headless analysis (no TUI)",
	Long: `Run graphgauge in headless mode and print the report to stdout.
Useful for CI pipelines or piping into other tools.

Example:
  graphgauge analyze amazon0302.txt`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config.InputPath = args[0]

		e, err := engine.New(cmd.Context(), config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer e.Close(context.Background())

		summary, err := e.Run(cmd.Context())
		if err != nil && !errors.Is(err, engine.ErrDirtyInput) {
			fmt.Printf("Error analyzing snapshot: %v\n", err)
			os.Exit(1)
		}
		if err != nil {
			fmt.Printf("[WARN] %v\n", err)
		}

		fmt.Print(report.Render(summary, topRows))
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
