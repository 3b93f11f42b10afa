/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strategies.go
Description: Implementation of the list-strategies command. Prints every
registered strategy with its description and headline defaults.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-decipher/pkg/scoring"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
)

// ListStrategies implements the list-strategies command
func ListStrategies(cmd *cobra.Command, args []string) {
	registry := strategies.NewRegistry(scoring.NewScorer())

	fmt.Println("Available strategies (run order):")
	fmt.Println()
	for _, name := range registry.Names() {
		strat, err := registry.Get(name)
		if err != nil {
			continue
		}
		cfg := strat.DefaultConfig()
		fmt.Printf("  %s\n", name)
		fmt.Printf("      %s\n", strat.Description())
		fmt.Printf("      budget=%.0fs min_token_len=%d min_plain_len=%d\n",
			cfg.BudgetS, cfg.MinTokenLen, cfg.MinPlainLen)
		fmt.Println()
	}
	fmt.Println("Configure per-strategy options under strategies.<name> in the config file.")
}
