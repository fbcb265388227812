package cmd

import (
	"fmt"
	"os"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/parser"
	"github.com/spf13/cobra"
)

var (
	rootMaxDepth int
	rootTrace    bool
	rootReader   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lispy",
	Short: "A small lisp interpreter",
	Long: `A small lisp interpreter.

Source is read as parenthesized expressions and evaluated with the special
forms quote, if, define and lambda and a standard library of builtins.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootConfig returns the environment configuration selected by the
// persistent flags.
func rootConfig() ([]lisp.Config, error) {
	var reader lisp.Reader
	switch rootReader {
	case "rd", "":
		reader = parser.NewReader()
	case "parsec":
		reader = parser.NewParsecReader()
	default:
		return nil, fmt.Errorf("unknown reader: %q", rootReader)
	}
	return []lisp.Config{
		lisp.WithReader(reader),
		lisp.WithMaximumStackHeight(rootMaxDepth),
		lisp.WithTrace(rootTrace),
	}, nil
}

func init() {
	rootCmd.PersistentFlags().IntVar(&rootMaxDepth, "max-depth", 10000,
		"Maximum call stack height (0 means unbounded)")
	rootCmd.PersistentFlags().BoolVar(&rootTrace, "trace", false,
		"Log every procedure call to stderr")
	rootCmd.PersistentFlags().StringVar(&rootReader, "reader", "rd",
		"Source reader: rd (recursive descent) or parsec")
}
