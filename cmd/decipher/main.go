/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Akaylee Decipher. Provides the
decipher command with per-strategy configuration, global budget and ranking
options, plus a strategy listing command and logging configuration.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/akaylee-decipher/cmd/decipher/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int

	// Run configuration
	totalBudget float64
	topK        int
	perAlgoCap  int
	promoteTop  bool
	active      []string

	// Output configuration
	reportDir string
	hintMode  string
	showPaths bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "akaylee-decipher",
		Short: "Akaylee Decipher - Brute-force candidate generation and ranking for obfuscated ciphertext",
		Long: `Akaylee Decipher attacks unknown ciphertext with a battery of decoding
strategies: the Base64 family, Base58, Base45, basE91, Caesar shifts, and
progressive position-dependent shifts. Each strategy salvages damaged or
obfuscated tokens, scores every decode against an English-fitness model, and
the engine ranks the merged candidate pool so the most plausible plaintexts
surface first.`,
		Version: "1.0.0",
	}

	// Persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))

	// Decipher command
	decipherCmd := &cobra.Command{
		Use:   "decipher [ciphertext]",
		Short: "Run all active strategies against a ciphertext and rank the candidates",
		Long: `Run the active strategy battery against the given ciphertext. The argument
is the raw ciphertext; pass "-" to read it from standard input. Every strategy
runs under its own soft budget and the whole run stops launching new strategies
once the global budget is spent.`,
		Args: cobra.ExactArgs(1),
		RunE: commands.RunDecipher,
	}

	decipherCmd.Flags().Float64Var(&totalBudget, "total-budget", 600, "Global wall-clock budget in seconds")
	decipherCmd.Flags().IntVar(&topK, "top-k", 10, "Number of ranked candidates to display")
	decipherCmd.Flags().IntVar(&perAlgoCap, "per-algo-cap", 5, "Maximum candidates per strategy in the ranked list")
	decipherCmd.Flags().BoolVar(&promoteTop, "promote-top", true, "Promote each strategy's best candidate to the front")
	decipherCmd.Flags().StringSliceVar(&active, "active", []string{}, "Strategies to run, in order (default: all)")
	decipherCmd.Flags().StringVar(&reportDir, "report-dir", "", "Write a JSON run report into this directory")
	decipherCmd.Flags().StringVar(&hintMode, "hints", "auto", "Rendering hints for winners (auto, always, never)")
	decipherCmd.Flags().BoolVar(&showPaths, "show-paths", true, "Show the transformation path of each candidate")

	viper.BindPFlag("total_budget_s", decipherCmd.Flags().Lookup("total-budget"))
	viper.BindPFlag("top_k", decipherCmd.Flags().Lookup("top-k"))
	viper.BindPFlag("per_algo_cap", decipherCmd.Flags().Lookup("per-algo-cap"))
	viper.BindPFlag("promote_top", decipherCmd.Flags().Lookup("promote-top"))
	viper.BindPFlag("active", decipherCmd.Flags().Lookup("active"))
	viper.BindPFlag("report_dir", decipherCmd.Flags().Lookup("report-dir"))
	viper.BindPFlag("hints", decipherCmd.Flags().Lookup("hints"))
	viper.BindPFlag("show_paths", decipherCmd.Flags().Lookup("show-paths"))

	rootCmd.AddCommand(decipherCmd)

	// Strategy listing command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "list-strategies",
		Short: "List available strategies and their defaults",
		Long: `List every registered strategy with its description and the default
configuration it runs with when the configuration file does not override it.`,
		Run: commands.ListStrategies,
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
