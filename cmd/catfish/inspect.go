package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catfish/internal/games/chase"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <snapshot.msgpack>",
	Short: "Decode a saved snapshot",
	Long: `Print the contents of a snapshot written with Ctrl+S during play.
Snapshots live in ~/.catfish/snapshots by default.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func runInspect(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	snap, err := chase.DecodeSnapshot(data)
	if err != nil {
		return err
	}

	fmt.Printf("\n  step %d  state %s  hash %016x\n", snap.Step, snap.State, snap.Hash())
	fmt.Printf("  score %d  lives %d  coins this run %d\n", snap.Score, snap.Lives, snap.CoinsThisRun)
	fmt.Printf("  elapsed %.2fs  ramp %.2f\n", snap.Elapsed, snap.Ramp)
	fmt.Printf("  combo x%.2f  timer %.2f\n", snap.Multiplier, snap.ComboTimer)

	p := snap.Player
	fmt.Printf("  cat at (%.0f, %.0f)  magnet %.2f  shield %d  dash cooldown %.2f\n",
		p.X, p.Y, p.Magnet, p.Shield, p.DashCooldown)
	fmt.Printf("  %d fish, %d dogs, %d power-ups\n", len(snap.Collectibles), len(snap.Threats), len(snap.Pickups))
	for _, e := range snap.Threats {
		fmt.Printf("    dog at (%.0f, %.0f) speed %.0f\n", e.X, e.Y, e.Speed)
	}
	for _, e := range snap.Pickups {
		fmt.Printf("    %s at (%.0f, %.0f)\n", e.Kind, e.X, e.Y)
	}

	m := snap.Meta
	fmt.Printf("  meta: %d coins, best %d, upgrades %v\n\n", m.Coins, m.BestScore, m.Upgrades)
	return nil
}
