package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"axdesc/internal/infrastructure/fixture"
	"axdesc/pkg/axdesc"
)

var describeFlags struct {
	label   string
	value   string
	hint    string
	traits  []string
	context string
	locale  string
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe one element given on the command line",
	Example: `  axdesc describe --label Submit --trait button
  axdesc describe --label Photo --trait image --context series:2/5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		node, ctx, err := describeInput()
		if err != nil {
			return err
		}
		printResult(cmd.OutOrStdout(), synthesizer.Synthesize(node, ctx))
		return nil
	},
}

func init() {
	f := describeCmd.Flags()
	f.StringVar(&describeFlags.label, "label", "", "Accessibility label")
	f.StringVar(&describeFlags.value, "value", "", "Accessibility value")
	f.StringVar(&describeFlags.hint, "hint", "", "Accessibility hint")
	f.StringSliceVar(&describeFlags.traits, "trait", nil, "Trait name (repeatable, or comma separated)")
	f.StringVar(&describeFlags.context, "context", "", "Context: kind or kind:index/count")
	f.StringVar(&describeFlags.locale, "locale", "", "Locale used for numbers")
	rootCmd.AddCommand(describeCmd)
}

func describeInput() (axdesc.Node, axdesc.Context, error) {
	traits, err := axdesc.ParseTraits(describeFlags.traits)
	if err != nil {
		return axdesc.Node{}, nil, err
	}
	ctx, err := fixture.ParseContextSpec(describeFlags.context)
	if err != nil {
		return axdesc.Node{}, nil, err
	}
	return axdesc.Node{
		Label:  describeFlags.label,
		Value:  describeFlags.value,
		Hint:   describeFlags.hint,
		Traits: traits,
		Locale: describeFlags.locale,
	}, ctx, nil
}

func printResult(w io.Writer, res axdesc.Result) {
	fmt.Fprintln(w, res.Description)
	if res.HasHint() {
		fmt.Fprintln(w, *res.Hint)
	}
}
