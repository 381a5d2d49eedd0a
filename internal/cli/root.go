package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/pathkit/internal/version"
	"github.com/arthur-debert/pathkit/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "pathkit",
		Short: "Inspect and manipulate filesystem paths",
		Long: `pathkit exposes the path library on the command line: lexical path
algebra (normalize, absolute, abbreviate), shell-style globbing and
matching, and directory listings driven by the lazy enumerator.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			cfg := loadConfig()
			if !cfg.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
				pterm.DisableColor()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(
		newNormCmd(),
		newAbsCmd(),
		newAbbrCmd(),
		newGlobCmd(),
		newMatchCmd(),
		newLsCmd(),
		newTreeCmd(),
		newMktempCmd(),
		newVersionCmd(),
		newManCmd(rootCmd),
	)

	return rootCmd
}
