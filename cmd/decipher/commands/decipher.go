/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: decipher.go
Description: Implementation of the decipher command. Loads configuration, sets
up logging, builds the strategy registry and engine, runs the search, prints
the ranked candidates, and optionally writes a JSON run report.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-decipher/pkg/core"
	"github.com/kleascm/akaylee-decipher/pkg/scoring"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
)

// RunDecipher implements the decipher command
func RunDecipher(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return err
	}

	logger, err := SetupLogging()
	if err != nil {
		return err
	}
	defer logger.Close()

	ciphertext, err := readCiphertext(args[0])
	if err != nil {
		return err
	}
	if strings.TrimSpace(ciphertext) == "" {
		return fmt.Errorf("ciphertext is empty")
	}

	registry := strategies.NewRegistry(scoring.NewScorer())
	runConfig, err := ResolveRunConfig(registry)
	if err != nil {
		return err
	}

	engine := core.NewEngine(registry, logger)
	result, err := engine.Run(ciphertext, runConfig)
	if err != nil {
		return err
	}

	PrintCandidates(os.Stdout, result, viper.GetString("hints"), viper.GetBool("show_paths"))

	if dir := viper.GetString("report_dir"); dir != "" {
		path, err := core.WriteReport(result, dir)
		if err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", path)
	}

	return nil
}

// readCiphertext returns the argument, or standard input when it is "-".
func readCiphertext(arg string) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read ciphertext from stdin: %w", err)
	}
	return string(data), nil
}
