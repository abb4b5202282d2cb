// catfish is a terminal chase: steer the cat to the fish, dodge the dogs,
// and spend the coins you bank on upgrades that outlive every run.
//
// Usage:
//
//	catfish play              - Play a run in this terminal
//	catfish serve             - Start SSH server for remote play
//	catfish shop              - Show upgrade levels and prices
//	catfish buy <upgrade>     - Buy one upgrade level
//	catfish scores            - Show profile statistics and best runs
//	catfish history           - Browse recorded runs interactively
//	catfish profiles          - List stored profiles
//	catfish inspect <file>    - Decode a saved snapshot
//	catfish config            - Print the effective tunables as YAML
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.catfish/catfish.db)
//	--profile <name>  - Progression profile (default: local)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagProfile string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "catfish",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catfish",
	Short: "Catfish - a cat, some fish, and too many dogs",
	Long: `Catfish is a terminal arcade chase. Collect fish to build a combo
multiplier, dodge the dogs homing in on you, and spend the coins you earn
on permanent upgrades between runs.

Examples:
  catfish play
  catfish play --difficulty hard
  catfish serve --ssh :2222
  catfish buy speed
  catfish scores`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catfish/catfish.db", "Path to progression database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "local", "Progression profile name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}
