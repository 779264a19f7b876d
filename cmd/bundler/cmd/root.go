// Package cmd implements the bundler command line.
package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/maja42/bootstrap/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:          "bundler",
	Short:        "Bundles installer packages into bootstrap executables",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(logLevel, "console")
	},
}

func init() {
	addPersistentFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(bundleCmd, inspectCmd)
}

func addPersistentFlags(fs *pflag.FlagSet) {
	fs.StringVar(&logLevel, "log-level", "info", "sets logging level (trace, debug, info, warn, error)")
}

// Execute runs the bundler.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		log.Debugf("command failed: %v", err)
	}
	return err
}
