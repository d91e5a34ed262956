package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/graphgauge/graphgauge/pkg/engine"
	"github.com/graphgauge/graphgauge/pkg/report"
)

var exportCmd = &cobra.Command{
	Use:   "export <snapshot>",
	Short: "Analyze and export results (CSV, JSON, HTML)",
	Long: `Run a headless analysis and write the summary to the output
directory in every supported format.

Default output directory: ./graphgauge-out/`,
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

		if err := os.MkdirAll(outDir, 0755); err != nil {
			fmt.Printf("Error creating output directory: %v\n", err)
			os.Exit(1)
		}

		artifacts := []struct {
			name  string
			write func(*engine.Summary, string) error
		}{
			{"summary.csv", report.WriteCSV},
			{"summary.json", report.WriteJSON},
			{"dashboard.html", report.GenerateHTML},
		}
		for _, a := range artifacts {
			path := filepath.Join(outDir, a.name)
			if err := a.write(summary, path); err != nil {
				fmt.Printf("Error writing %s: %v\n", a.name, err)
				os.Exit(1)
			}
			fmt.Printf("  wrote %s\n", path)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
