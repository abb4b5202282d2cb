package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/catfish/internal/platform/tui"
	"github.com/vovakirdan/catfish/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show profile statistics and best runs",
	Long: `Display aggregate statistics and the best runs of a profile.

Examples:
  catfish scores
  catfish scores --profile tom --limit 20
  catfish scores --clear        # Forget the run history, keep coins and upgrades`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded runs interactively",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List stored profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history of the profile")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(flagProfile); err != nil {
			return err
		}
		logger.Info("run history cleared", "profile", flagProfile)
		return nil
	}

	stats, err := store.Stats(flagProfile)
	if err != nil {
		return err
	}
	runs, err := store.TopRuns(flagProfile, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("\n  %s\n", strings.ToUpper(flagProfile))
	fmt.Println("  " + strings.Repeat("=", 36))
	if stats.Runs == 0 {
		fmt.Println("  No runs recorded yet. Go catch some fish!")
		fmt.Println()
		return nil
	}

	fmt.Printf("  Runs        %s\n", humanize.Comma(int64(stats.Runs)))
	fmt.Printf("  Best        %s\n", humanize.Comma(int64(stats.BestScore)))
	fmt.Printf("  Average     %.1f\n", stats.AvgScore)
	fmt.Printf("  Coins       %s\n", humanize.Comma(int64(stats.TotalCoins)))
	fmt.Printf("  Play time   %s\n", stats.PlayTime.Round(time.Second))
	fmt.Printf("  Last played %s\n\n", humanize.Time(stats.LastPlayed))

	fmt.Println("  Rank  Score     Coins  Time      When")
	fmt.Println("  " + strings.Repeat("-", 48))
	for i, r := range runs {
		fmt.Printf("  #%-3d  %8d  %5d  %-8s  %s\n",
			i+1, r.Score, r.CoinsEarned, r.Duration.Round(time.Second), humanize.Time(r.CreatedAt))
	}
	fmt.Println()
	return nil
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunHistory(store, flagProfile, width, height)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	profiles, err := store.Profiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles yet.")
		return nil
	}

	fmt.Println("\nProfiles:")
	fmt.Println(strings.Repeat("-", 56))
	for _, p := range profiles {
		fmt.Printf("  %-16s %8s coins  best %-8s %s\n",
			p.Name,
			humanize.Comma(int64(p.Meta.Coins)),
			humanize.Comma(int64(p.Meta.BestScore)),
			humanize.Time(p.UpdatedAt),
		)
	}
	fmt.Println()
	return nil
}
