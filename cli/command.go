// Package cli provides shared cobra scaffolding for redux-lite tools:
// standard flags and flag-driven logger setup.
package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oldbig/redux-lite/logging"
)

// CommandOptions holds common options for redux-lite commands
type CommandOptions struct {
	ConfigFile string
	Verbose    bool
	JSONOutput bool
}

// NewStandardCommand creates a new command with the standard flags
func NewStandardCommand(use, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	AddStandardFlags(cmd.PersistentFlags())
	return cmd
}

// AddStandardFlags registers the flags every redux-lite tool carries.
func AddStandardFlags(fs *pflag.FlagSet) {
	fs.BoolP("verbose", "v", false, "Enable verbose logging")
	fs.Bool("json", false, "Output logs in JSON format")
	fs.StringP("config", "c", "", "Path to redux.yml config file")
}

// GetLogger creates a logger based on command flags
func GetLogger(cmd *cobra.Command, component string) *logrus.Entry {
	entry := logging.NewLogger(component)

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		entry.Logger.SetLevel(logrus.DebugLevel)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		entry.Logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return entry
}

// GetOptions extracts common options from a command
func GetOptions(cmd *cobra.Command) CommandOptions {
	configFile, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	return CommandOptions{
		ConfigFile: configFile,
		Verbose:    verbose,
		JSONOutput: jsonOutput,
	}
}
