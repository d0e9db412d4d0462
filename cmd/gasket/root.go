// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gasket/internal/config"
	"github.com/gogpu/gasket/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands after the persistent
// pre-run has loaded the configuration.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gasket",
		Short: "Gasket generates Apollonian circle packings",
		Long: `Gasket builds an Apollonian gasket from three mutually tangent circles
using Descartes' theorem, subdividing breadth-first one step at a time.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newViewCmd(a),
		newRenderCmd(a),
		newStatsCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads the configuration and installs the logger.
func (a *app) setup() error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(level)
	gasket.SetLogger(a.log)

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.Debug("config loaded", "path", a.configPath, "canvas", cfg.Canvas)
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
