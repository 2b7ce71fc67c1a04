package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	autoid "github.com/schatt/sixlayer-autoid"
	"github.com/schatt/sixlayer-autoid/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	namespace  string
	prefix     string
	modeName   string

	// Logger, initialized by the root command before any subcommand runs
	logger *slog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "autoid",
	Short: "autoid - deterministic accessibility identifiers for UI-tree fixtures",
	Long: `autoid derives stable, human-readable accessibility identifiers for the
nodes of a UI tree, the same identifiers the library produces at runtime.

It walks a YAML tree fixture the way a view traversal would - pushing a
hierarchy frame per container, applying the assignment cascade per node -
so the identifiers it prints are exactly what automated UI tests should
target.

Configuration is resolved in cascade order: the nearest autoid.yaml (or
the file named with --config), then AUTOID_* environment variables, then
command-line flags. A .env file in the working directory is loaded first.

Example:
  autoid preview login.yaml
  autoid export login.yaml --format xcuitest --out LoginScreenTests.swift
  autoid formats`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to autoid.yaml (default: nearest autoid.yaml up from the working directory)")
	rootCmd.PersistentFlags().StringVar(&namespace, "namespace", "", "Override the configured namespace")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "", "Override the configured global prefix")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "", "Override the naming mode (automatic|semantic)")

	// Add commands to root
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(formatsCmd)
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildEngine assembles an engine from the cascade the CLI honors: the
// configuration file, then AUTOID_* environment overrides, then flags,
// most specific last.
func buildEngine() (*autoid.Engine, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if loaded, err := config.LoadFromCurrentDir(); err == nil {
		// No file anywhere up the tree just means defaults.
		cfg = loaded
	}

	cfg = config.ApplyEnv(cfg)

	if namespace != "" {
		cfg.Namespace = namespace
	}
	if prefix != "" {
		cfg.GlobalPrefix = prefix
	}
	if modeName != "" {
		mode, err := config.ParseMode(modeName)
		if err != nil {
			return nil, err
		}
		cfg.Mode = mode
	}

	return autoid.New(
		autoid.WithConfig(cfg),
		autoid.WithLogger(logger),
	)
}
