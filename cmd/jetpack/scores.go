package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jetpack-arcade/internal/config"
	"github.com/vovakirdan/jetpack-arcade/internal/registry"
	"github.com/vovakirdan/jetpack-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Without a mode, summarize every mode that has been played.
With a mode, list its best run per pilot.

Examples:
  jetpack scores
  jetpack scores classic --limit 20
  jetpack scores ace --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Number of pilots to show (default: scoreboard.top_n)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	modeID := args[0]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'jetpack list' to see available modes", modeID)
	}

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", modeID)
		return nil
	}

	limit := flagScoresLimit
	if limit <= 0 {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		limit = cfg.Scoreboard.TopN
	}

	scores, err := store.TopScores(modeID, limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", modeID)
	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'jetpack play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Pilot", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "-----", "-----", "----")
	for i, r := range scores {
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, r.Name, r.Score, r.Date)
	}
	return nil
}

// printSummary renders one row of aggregates per played mode.
func printSummary(store *storage.Store) error {
	stats, err := store.AllModeStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Mode", "Runs", "Pilots", "Best", "Average", "Last flown").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, id := range ids {
		s := stats[id]
		last := "-"
		if !s.LastPlayed.IsZero() {
			last = s.LastPlayed.Format("2006-01-02 15:04")
		}
		t.Row(
			id,
			strconv.Itoa(s.RunsCount),
			strconv.Itoa(s.Pilots),
			strconv.Itoa(s.HighScore),
			fmt.Sprintf("%.0f", s.AvgScore),
			last,
		)
	}

	fmt.Println(t)
	return nil
}
