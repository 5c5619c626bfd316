package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"axdesc/internal/config"
	"axdesc/internal/logging"
	"axdesc/pkg/axdesc"
)

var (
	logger      *zap.Logger
	synthesizer *axdesc.Synthesizer

	rawSwitchValue bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "axdesc",
	Short: "Synthesize screen reader descriptions for UI elements",
	Long: `axdesc builds the description and hint a screen reader announces for an
element, from its label, value, hint, traits and structural context.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if cmd.Flags().Changed("raw-switch-value") {
			cfg.EmitRawSwitchValue = rawSwitchValue
		}

		logger, err = logging.New(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		synthesizer, err = axdesc.New(axdesc.OptionsFromConfig(cfg, logger))
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rawSwitchValue, "raw-switch-value", false, "Announce unrecognised switch values")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
