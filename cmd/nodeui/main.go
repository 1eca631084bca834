// Package main provides the CLI tool for nodeui scene files.
//
// Usage:
//
//	nodeui compute scene.yaml    Compute a scene and print the layout tree
//	nodeui check [path...]       Validate scene files without computing
//	nodeui init scene.yaml       Write an example scene
//	nodeui version               Print version information
//
// Examples:
//
//	nodeui compute menu.yaml --width 1280 --height 720
//	nodeui compute menu.yaml --show-hidden --no-data
//	nodeui check ./...
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/grindlemire/nodeui/internal/debug"
)

const version = "0.1.0"

type app struct {
	verbose  bool
	debugLog string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "nodeui",
		Short: "nodeui - compute and inspect layout scenes",
		Long: `nodeui loads YAML scene files describing a tree of layout nodes,
runs the layout pass over a viewport and prints the resulting rectangles.

Set NODEUI_DEBUG or pass --debug-log to append debug output to a file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.debugLog != "" {
				if err := debug.Init(a.debugLog); err != nil {
					return err
				}
			}
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = zap.New(zapcore.NewTee(logger.Core(), debug.Logger().Core()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
			_ = debug.Close()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.debugLog, "debug-log", "", "Append debug output to this file (overrides "+debug.EnvVar+")")

	root.AddCommand(
		newComputeCmd(a),
		newCheckCmd(a),
		newInitCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nodeui version %s\n", version)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
