package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"axdesc/internal/infrastructure/fixture"
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Describe every element of a TOML or YAML fixture",
	Long:  `Prints one line per element: name, description and hint separated by tabs.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		elements, err := fixture.LoadFile(args[0])
		if err != nil {
			return err
		}
		logger.Debug("fixture loaded", zap.String("path", args[0]), zap.Int("elements", len(elements)))

		out := cmd.OutOrStdout()
		for _, el := range elements {
			res := synthesizer.Synthesize(el.Node, el.Context)
			fmt.Fprintf(out, "%s\t%s\t%s\n", el.Name, res.Description, res.HintOr(""))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
