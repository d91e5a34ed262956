package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/graphgauge/graphgauge/internal/ui"
	"github.com/graphgauge/graphgauge/pkg/engine"
	"github.com/graphgauge/graphgauge/pkg/version"
)

var (
	cfgFile string
	config  engine.Config
	topRows int
	outDir  string
)

var rootCmd = &cobra.Command{
	Use:   "graphgauge <snapshot>",
	Short: "Structural statistics for directed graph snapshots",
	Long: `graphgauge - Network Snapshot Forensics

Ingest a directed edge list, browse degree distributions and
approximate closeness centrality.`,
	Version: version.Current,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config.InputPath = args[0]

		e, err := engine.New(cmd.Context(), config)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer e.Close(context.Background())

		p := tea.NewProgram(ui.NewModel(e, topRows), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent Flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.graphgauge.yaml)")
	rootCmd.PersistentFlags().BoolVar(&config.Strict, "strict", false, "Abort on the first malformed edge line (reference behavior)")
	rootCmd.PersistentFlags().IntVar(&topRows, "top", 20, "Histogram rows shown per distribution")
	rootCmd.PersistentFlags().BoolVar(&config.JSONLogs, "json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "graphgauge-out", "Output directory for exported artifacts")

	// Hidden Flags
	rootCmd.PersistentFlags().StringVar(&config.OtelEndpoint, "otel-endpoint", "", "OTLP HTTP endpoint")
	rootCmd.PersistentFlags().MarkHidden("otel-endpoint")

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderStyledHelp(cmd)
	})

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		applyConfigFile(cmd)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.SetConfigFile(filepath.Join(home, ".graphgauge.yaml"))
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("GRAPHGAUGE")
	viper.AutomaticEnv()
	viper.ReadInConfig()
}

// applyConfigFile lets the config file fill in anything the user did
// not set on the command line. Flags always win.
func applyConfigFile(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("strict") && viper.IsSet("strict") {
		config.Strict = viper.GetBool("strict")
	}
	if !flags.Changed("top") && viper.IsSet("top") {
		topRows = viper.GetInt("top")
	}
	if !flags.Changed("json-logs") && viper.IsSet("json-logs") {
		config.JSONLogs = viper.GetBool("json-logs")
	}
	if !flags.Changed("out") && viper.IsSet("out") {
		outDir = viper.GetString("out")
	}
}

func renderStyledHelp(cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Println(titleStyle.Render(fmt.Sprintf("GRAPHGAUGE %s", version.Current)))
	fmt.Println("Structural statistics for directed graph snapshots.")

	fmt.Println(titleStyle.Render("USAGE"))
	fmt.Printf("  %s\n\n", cmd.UseLine())

	fmt.Println(titleStyle.Render("COMMANDS"))
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			fmt.Printf("  %-12s %s\n", c.Name(), c.Short)
		}
	}
	fmt.Println("")

	fmt.Println(titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Println(flagStyle.Render(output))
	})
	fmt.Println("")
}
