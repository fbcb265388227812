package cmd

import (
	"github.com/bmatsuo/lispy/repl"
	"github.com/spf13/cobra"
)

var (
	replPrompt  string
	replHistory string
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive read-eval-print loop.

Incomplete expressions continue on the next line.  Ctrl-C discards the
pending input and Ctrl-D exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := rootConfig()
		if err != nil {
			return err
		}
		return repl.RunRepl(replPrompt, replHistory, config...)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", repl.DefaultPrompt,
		"Input prompt")
	replCmd.Flags().StringVar(&replHistory, "history", "",
		"File used to persist input history")
}
