// Root command, global flags, and exit code classification.
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rift/pkg/leaguepedia"
	"github.com/mesh-intelligence/rift/pkg/types"
)

// Exit codes: 0 success, 1 user error, 2 system error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagOutput    string
	flagOutFile   string
	flagTimeout   time.Duration
)

// client is the shared query client, built by PersistentPreRunE and
// closed by PersistentPostRunE.
var client *leaguepedia.Client

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Scout queries League of Legends esports data from Leaguepedia",
	Long: `Scout is a command-line client for the Leaguepedia Cargo tables:
champions, items, players, contracts, roster moves, standings,
scoreboards, and tournaments.

Results render as an aligned table by default; --output switches to
json, yaml, or an xlsx export.`,
	Version:            leaguepedia.Version,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initClient,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeClient() },
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", outputTable, "output format: table, json, yaml, xlsx")
	rootCmd.PersistentFlags().StringVar(&flagOutFile, "out", "", "target file for xlsx output (default: scout.xlsx)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "HTTP timeout override, e.g. 15s")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(contractsCmd)
	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(tournamentsCmd)
	rootCmd.AddCommand(regionsCmd)
	rootCmd.AddCommand(gamesCmd)
	rootCmd.AddCommand(mvpCmd)
}

// initClient loads configuration and builds the query client.
func initClient(cmd *cobra.Command, args []string) error {
	// Version needs no client and must work with a broken config.
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagTimeout > 0 {
		cfg.Timeout = flagTimeout
	}

	c, err := leaguepedia.New(cfg)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	client = c
	return nil
}

// closeClient releases the client and its cache handle.
func closeClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// userError marks a failure caused by the invocation rather than the
// system, so main can pick the right exit code.
type userError struct{ msg string }

func (e userError) Error() string { return e.msg }

func userErrorf(format string, args ...any) error {
	return userError{msg: fmt.Sprintf(format, args...)}
}

// exitCode classifies an Execute error into the CLI exit codes.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ue userError
	if errors.As(err, &ue) {
		return exitUserError
	}
	if errors.Is(err, types.ErrEmptyName) ||
		errors.Is(err, types.ErrUnknownColumn) ||
		errors.Is(err, types.ErrTeamNotFound) {
		return exitUserError
	}
	return exitSysError
}
