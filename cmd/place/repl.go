package main

import (
	"github.com/spf13/cobra"

	"github.com/BonnyAD9/place-macro/internal/ui"
	"github.com/BonnyAD9/place-macro/pkg/place"
)

var (
	replPasses   int
	replMaxSteps int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive expansion playground",
	Long:  `Repl reads expressions one line at a time and shows their expansion.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.RunREPL(place.Options{
			MaxSteps: replMaxSteps,
			Passes:   replPasses,
		})
	},
}

func init() {
	replCmd.Flags().IntVar(&replPasses, "passes", 0, "extra expansion passes for staged directives (default 1)")
	replCmd.Flags().IntVar(&replMaxSteps, "max-steps", 0, "directive evaluation limit per pass (default 10000)")
}
