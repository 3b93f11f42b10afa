/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Akaylee Decipher commands. Configuration
loading with environment overrides, logging setup, and resolution of the run
configuration by overlaying config file sections on strategy defaults.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-decipher/pkg/interfaces"
	"github.com/kleascm/akaylee-decipher/pkg/logging"
	"github.com/kleascm/akaylee-decipher/pkg/strategies"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	viper.SetEnvPrefix("AKAYLEE")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from the resolved configuration.
func SetupLogging() (*logging.Logger, error) {
	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    logging.LogFormat(viper.GetString("log_format")),
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  viper.GetInt("log_max_files"),
		Timestamp: true,
		Colors:    true,
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}
	return logging.NewLogger(config)
}

// ResolveRunConfig builds the run configuration: the active strategy list from
// flags or config, and per-strategy configs resolved by overlaying the
// "strategies.<name>" config section on each strategy's own defaults.
func ResolveRunConfig(registry *strategies.Registry) (*interfaces.RunConfig, error) {
	active := viper.GetStringSlice("active")
	if len(active) == 0 {
		active = registry.Names()
	}

	configs := make(map[string]*interfaces.StrategyConfig, len(active))
	for _, name := range active {
		strat, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		cfg := strat.DefaultConfig()
		key := "strategies." + name
		if viper.IsSet(key) {
			if err := viper.UnmarshalKey(key, cfg); err != nil {
				return nil, fmt.Errorf("invalid configuration for strategy %s: %w", name, err)
			}
		}
		configs[name] = cfg
	}

	return &interfaces.RunConfig{
		ActiveStrategies: active,
		StrategyConfigs:  configs,
		TotalBudgetS:     viper.GetFloat64("total_budget_s"),
		TopK:             viper.GetInt("top_k"),
		PerAlgoCap:       viper.GetInt("per_algo_cap"),
		PromoteTop:       viper.GetBool("promote_top"),
	}, nil
}
