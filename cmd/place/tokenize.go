package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BonnyAD9/place-macro/internal/diagfmt"
	"github.com/BonnyAD9/place-macro/internal/driver"
	"github.com/BonnyAD9/place-macro/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.place",
	Short: "Tokenize an input file without expanding it",
	Long:  `Tokenize breaks an input file into its token trees and prints them.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fs := source.NewFileSet()
	res, err := driver.Tokenize(fs, args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if res.Bag.Len() > 0 {
		res.Bag.Dedup()
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, fs, diagfmt.PrettyOpts{
			Color: useColor(cmd, os.Stderr),
		})
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTreesPretty(cmd.OutOrStdout(), res.Stream)
	case "json":
		return diagfmt.FormatTreesJSON(cmd.OutOrStdout(), res.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
