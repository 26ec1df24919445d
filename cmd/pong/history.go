package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagHistoryPlayer string
	flagHistoryLimit  int
	flagHistoryClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display recently recorded matches and overall statistics.

Examples:
  pong history
  pong history --player alice
  pong history --limit 50
  pong history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show matches for this player")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	var records []storage.Record
	if flagHistoryPlayer != "" {
		records, err = store.PlayerHistory(flagHistoryPlayer, flagHistoryLimit)
	} else {
		records, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	printHistory(os.Stdout, flagHistoryPlayer, records, stats)
}

// printHistory writes the match table followed by overall statistics.
func printHistory(w io.Writer, player string, records []storage.Record, stats *storage.Stats) {
	title := "Match History"
	if player != "" {
		title += " - " + player
	}
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(records) == 0 {
		fmt.Fprintln(w, "No matches recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'pong play' to record the first match!")
		return
	}

	headers := []string{"Date", "Player", "Score", "Winner", "Result", "Time"}
	fmt.Fprintf(w, "  %-12s  %-12s  %-7s  %-6s  %-9s  %s\n", toAny(headers)...)
	fmt.Fprintf(w, "  %-12s  %-12s  %-7s  %-6s  %-9s  %s\n",
		"----", "------", "-----", "------", "------", "----")

	for _, r := range records {
		fmt.Fprintf(w, "  %-12s  %-12s  %-7s  %-6s  %-9s  %s\n", toAny(tui.HistoryRow(r))...)
	}

	if stats == nil || stats.Matches == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d  (left %d, right %d, abandoned %d)\n",
		stats.Matches, stats.LeftWins, stats.RightWins, stats.Abandoned)
	fmt.Fprintf(w, "Average length: %s\n", stats.AvgDuration.Round(time.Second))
	if !stats.LastPlayed.IsZero() {
		fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
}

func toAny(cells []string) []any {
	out := make([]any, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
