package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"flowhealth/internal/config"
	"flowhealth/internal/logging"
	"flowhealth/internal/mcp"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "flowhealth",
	Short: "Flowhealth is a workflow flow & stability analytics MCP server for Jira data",
	Long: `A specialized MCP server that reconstructs per-stage durations from Jira status
histories and computes flow-health scorecards: rolling net-flow trends, bootstrap
confidence intervals, EWMA/CUSUM signals, volatility, segmentation, and ownership metrics.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("flowhealth starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg)
		if err := server.Serve(); err != nil {
			log.Fatal().Err(err).Msg("MCP server terminated")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
