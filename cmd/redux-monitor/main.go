// redux-monitor is the receiving end of the DevTools bridge: it listens
// for store connections and prints the action stream.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oldbig/redux-lite/cli"
	"github.com/oldbig/redux-lite/config"
	"github.com/oldbig/redux-lite/devtools"
	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
	"github.com/oldbig/redux-lite/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := cli.NewStandardCommand(
		"redux-monitor",
		"Watch the action stream of connected redux-lite stores",
	)
	cmd.Flags().String("addr", "", "listen address (overrides config)")
	cmd.Flags().String("path", "/devtools", "websocket mount path")
	cmd.RunE = run

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetInfo().String())
		},
	})

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd, "redux-monitor")
	opts := cli.GetOptions(cmd)

	var cfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if !opts.Verbose && !opts.JSONOutput {
		logging.Configure(logger, cfg.Logging.Level, cfg.Logging.Format)
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = "127.0.0.1:9200"
	}
	path, _ := cmd.Flags().GetString("path")

	logger.WithFields(logrus.Fields{
		"addr": addr,
		"path": path,
	}).Info("monitor listening")

	return devtools.ListenAndServe(addr, path, &printHandler{logger: logger})
}

// printHandler logs every frame the monitor receives.
type printHandler struct {
	logger *logrus.Entry
}

func (h *printHandler) HandleInit(name string, state store.State) {
	h.logger.WithFields(logrus.Fields{
		"store":  name,
		"slices": len(state),
	}).Info("store connected")
}

func (h *printHandler) HandleAction(name string, action store.Action, state store.State) {
	h.logger.WithFields(logrus.Fields{
		"store":   name,
		"action":  action.Type,
		"partial": action.Partial,
		"payload": action.Payload,
	}).Info("action")
}

func (h *printHandler) HandleDisconnect(name string) {
	h.logger.WithField("store", name).Info("store disconnected")
}
