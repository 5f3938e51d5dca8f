package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/opensymbolicai/osai/internal/branding"
	"github.com/opensymbolicai/osai/internal/config"
	"github.com/opensymbolicai/osai/internal/logging"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevelFlag string

	// log is the root logger, configured in PersistentPreRun.
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` discovers PlanExecute and Planner agent classes in
Python source trees, inspects their primitive and decomposition capabilities,
and lists the models available for running them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		level := logLevelFlag
		if level == "" {
			level = config.Get(config.KeyLogLevel)
		}
		log = logging.New(nil, level)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error, silent)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
