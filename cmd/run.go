package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/bmatsuo/lispy/lisp"
	"github.com/bmatsuo/lispy/lisp/lisplib"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE...",
	Short: "Run lisp code",
	Long:  `Run lisp code supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := rootConfig()
		if err != nil {
			return err
		}
		return runSources(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, config)
	},
}

func runSources(stdout, stderr io.Writer, args []string, config []lisp.Config) error {
	sources, err := runReadSources(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	config = append(config, lisp.WithStdout(stdout), lisp.WithStderr(stderr))
	env, err := lisplib.NewEnv(config...)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	for i, src := range sources {
		exprs, err := env.Runtime.Reader.Read(args[i], bytes.NewReader(src))
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", args[i], err)
			return err
		}
		for _, expr := range exprs {
			v, err := env.Eval(expr)
			if err != nil {
				fmt.Fprintln(stderr, err)
				if stack := lisp.GetStack(err); stack.Height() > 0 {
					stack.DebugPrint(stderr)
				}
				return err
			}
			if runPrint {
				if s := v.String(); s != "" {
					fmt.Fprintln(stdout, s)
				}
			}
		}
	}
	return nil
}

func runReadSources(args []string) ([][]byte, error) {
	sources := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			sources[i] = []byte(args[i])
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = b
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
