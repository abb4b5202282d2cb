package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/catfish/internal/config"
	"github.com/vovakirdan/catfish/internal/progress"
	"github.com/vovakirdan/catfish/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Show upgrade levels and prices",
	Long: `Show the coins, best score and upgrade levels of a profile together
with the price of the next level of each upgrade.

Examples:
  catfish shop
  catfish shop --profile tom`,
	Args: cobra.NoArgs,
	RunE: runShop,
}

var buyCmd = &cobra.Command{
	Use:       "buy <upgrade>",
	Short:     "Buy one upgrade level",
	ValidArgs: []string{config.UpgradeSpeed, config.UpgradeLives, config.UpgradeMagnet},
	Long: `Spend coins on one level of an upgrade.

Upgrades:
  speed  - Faster cat
  lives  - One more life per run
  magnet - Longer magnet power-ups

Examples:
  catfish buy speed
  catfish buy magnet --profile tom`,
	Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: runBuy,
}

// openProfile opens the database and loads the selected profile.
func openProfile() (*storage.Store, progress.Meta, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, progress.Meta{}, fmt.Errorf("opening database: %w", err)
	}
	meta, err := store.LoadMeta(flagProfile)
	if err != nil {
		logger.Warn("progression record reset", "profile", flagProfile, "err", err)
	}
	return store, meta, nil
}

func economy() (progress.Economy, error) {
	cfg, err := loadChaseConfig()
	if err != nil {
		return progress.Economy{}, err
	}
	return progress.NewEconomy(cfg.Economy), nil
}

func printShop(meta progress.Meta, econ progress.Economy) {
	fmt.Printf("\n  Profile %s: %s coins, best %s\n\n",
		flagProfile, humanize.Comma(int64(meta.Coins)), humanize.Comma(int64(meta.BestScore)))
	fmt.Println("  Upgrade   Level   Next")
	fmt.Println("  " + strings.Repeat("-", 24))
	for _, o := range econ.Offers(meta) {
		mark := " "
		if o.Affordable {
			mark = "*"
		}
		fmt.Printf("  %-8s  %5d   %5d %s\n", o.Key, o.Level, o.Cost, mark)
	}
	fmt.Println()
}

func runShop(_ *cobra.Command, _ []string) error {
	econ, err := economy()
	if err != nil {
		return err
	}
	store, meta, err := openProfile()
	if err != nil {
		return err
	}
	defer store.Close()

	printShop(meta, econ)
	return nil
}

func runBuy(_ *cobra.Command, args []string) error {
	key := args[0]
	econ, err := economy()
	if err != nil {
		return err
	}
	store, meta, err := openProfile()
	if err != nil {
		return err
	}
	defer store.Close()

	cost := econ.NextCost(meta, key)
	if !econ.Purchase(&meta, key) {
		return fmt.Errorf("%s costs %d coins, you have %d", key, cost, meta.Coins)
	}
	if err := store.SaveMeta(flagProfile, meta); err != nil {
		return err
	}

	logger.Info("upgrade bought", "upgrade", key, "level", meta.Level(key), "cost", cost)
	printShop(meta, econ)
	return nil
}
