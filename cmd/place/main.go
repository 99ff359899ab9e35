package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/BonnyAD9/place-macro/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "place",
	Short: "Token-stream macro rewriting engine",
	Long: `place recognizes directive calls like __string__(...) embedded in a
token stream and rewrites them, innermost-first, until none remain.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch colorFlag(cmd) {
		case "on":
			color.NoColor = false
		case "off":
			color.NoColor = true
		}
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(expandCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func colorFlag(cmd *cobra.Command) string {
	v, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "auto"
	}
	return v
}

// useColor resolves the --color flag against the actual output stream.
func useColor(cmd *cobra.Command, f *os.File) bool {
	switch colorFlag(cmd) {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
