// Command scheduler plans weekly shift rosters from the terminal and can
// serve the same engine as a JSON API.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const version = "1.0.0"

var (
	// Global flags
	verbose bool

	log = logrus.New()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Assign employees to weekly shifts",
	Long: `scheduler builds a weekly roster from a shift file and a list of
employees, spreading the load as evenly as it can while honoring
requested days off.

Start with:
  scheduler plan shifts.csv`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI runs log text to stderr so the tables and prompts stay clean.
		// The serve command reconfigures the logger from its own config.
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		log.SetLevel(logrus.WarnLevel)
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
