package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MEMAtest/stress-engine/internal/api"
	"github.com/MEMAtest/stress-engine/internal/catalog"
	"github.com/MEMAtest/stress-engine/internal/config"
	"github.com/MEMAtest/stress-engine/internal/orchestrator"
	"github.com/MEMAtest/stress-engine/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "stress-engine",
	Short: "Stress-testing and Monte Carlo risk simulation engine",
	Long:  "Runs a client's baseline retirement scenario through a catalog of adverse economic and personal-life stress scenarios and reports the resulting risk metrics.",
}

var runCmd = &cobra.Command{
	Use:   "run [baseline-file]",
	Short: "Run stress tests against a baseline scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		baseline, err := parser.LoadBaseline(args[0])
		if err != nil {
			return err
		}

		trials, _ := cmd.Flags().GetInt("trials")
		seed, _ := cmd.Flags().GetInt64("seed")
		scenarioList, _ := cmd.Flags().GetString("scenarios")
		format, _ := cmd.Flags().GetString("format")
		outputFile, _ := cmd.Flags().GetString("output")
		verbose, _ := cmd.Flags().GetBool("verbose")

		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		formatter, err := output.ForFormat(format)
		if err != nil {
			return err
		}

		runner := orchestrator.New(orchestrator.Config{
			TrialCount: trials,
			Seed:       seed,
			Log:        cliLogger(verbose),
		})

		results := runner.Run(cmd.Context(), baseline, parseScenarioList(scenarioList))

		rendered, err := formatter.Format(results)
		if err != nil {
			return err
		}

		if outputFile != "" {
			return os.WriteFile(outputFile, rendered, 0o644)
		}
		_, err = os.Stdout.Write(rendered)
		return err
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stress-scenario catalog grouped by category",
	Run: func(cmd *cobra.Command, args []string) {
		cat := catalog.Default()
		grouped := cat.ByCategory()
		for category, scenarios := range grouped {
			fmt.Printf("%s:\n", category)
			for _, sc := range scenarios {
				fmt.Printf("  %-26s [%s, %dy]  %s\n", sc.ID, sc.Severity, sc.DurationYears, sc.Description)
			}
			fmt.Println()
		}
		fmt.Printf("%d scenarios in catalog\n", cat.Len())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog and stress-test API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; explicit flags win over the environment.
		_ = godotenv.Load()

		port, _ := cmd.Flags().GetInt("port")
		if port == 0 {
			port = envInt("STRESS_ENGINE_PORT", 8085)
		}
		trials, _ := cmd.Flags().GetInt("trials")
		if trials == 0 {
			trials = envInt("STRESS_ENGINE_TRIALS", orchestrator.DefaultTrialCount)
		}

		log := zerolog.New(os.Stderr).With().Timestamp().Logger()
		runner := orchestrator.New(orchestrator.Config{
			TrialCount: trials,
			Seed:       time.Now().UnixNano(),
			Log:        log,
		})

		server := api.New(api.Config{
			Port:   port,
			Runner: runner,
			Log:    log,
		})
		return server.ListenAndServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "stress-engine %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, bi.Main.Path)
		}
	},
}

func cliLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// parseScenarioList parses a comma-separated list of scenario ids.
func parseScenarioList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

func envInt(key string, def int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return def
}

func init() {
	runCmd.Flags().Int("trials", orchestrator.DefaultTrialCount, "Monte Carlo trials per scenario")
	runCmd.Flags().Int64("seed", 0, "random seed (0 = time-based)")
	runCmd.Flags().String("scenarios", "", "comma-separated scenario ids (default: whole catalog)")
	runCmd.Flags().String("format", "table", "output format: table, json, csv")
	runCmd.Flags().String("output", "", "write output to file instead of stdout")
	runCmd.Flags().Bool("verbose", false, "verbose logging")

	serveCmd.Flags().Int("port", 0, "listen port (default: STRESS_ENGINE_PORT or 8085)")
	serveCmd.Flags().Int("trials", 0, "Monte Carlo trials per scenario")

	rootCmd.AddCommand(runCmd, listCmd, serveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
