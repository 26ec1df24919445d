// pong is a terminal pong game with match history and an SSH server.
//
// Usage:
//
//	pong play               - Play a match in this terminal
//	pong serve              - Start SSH server for remote play
//	pong history            - Show recorded matches
//	pong sim                - Run a headless match and print its final state
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (.yaml or .toml)
//	--fps <rate>       - Set frame rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible serves
//	--db <path>        - Set database path (default: ~/.pong/history.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write JSON logs to a rotating file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - play pong in your terminal",
	Long: `Pong is a terminal version of the classic paddle game.
First to 11 wins. Every finished match is recorded.

Available commands:
  play     - Play a match in this terminal
  serve    - Start SSH server for remote play
  history  - Show recorded matches
  sim      - Run a headless match
  config   - Print the effective configuration

Examples:
  pong play
  pong play --config ./pong.toml
  pong serve --ssh :2222
  pong history --player alice
  pong sim --seed 42 --ticks 600`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml or .toml)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/history.db", "Path to match history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write JSON logs to this rotating file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig reads the config file and applies explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// mustSetup loads the config and builds the logger, exiting on failure.
func mustSetup(cmd *cobra.Command, prefix string) (config.Config, *log.Logger, io.Closer) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := logging.New(logging.OptionsFrom(cfg.Logging, prefix))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg, logger, closer
}
