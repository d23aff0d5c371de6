// Command golox scans and parses Lox source and prints the resulting
// tokens and expression trees.
//
// Usage:
//
//	golox [flags] [script]
//
// With a script argument the file is processed once; the exit status is 65
// if any diagnostic was reported. Without one, golox starts an interactive
// prompt where each line is processed independently.
//
// Examples:
//
//	golox expr.lox
//	golox --tokens --ast=false expr.lox
//	echo '1 + 2 * 3' | golox
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// Exit codes follow sysexits.h.
const (
	exitOK      = 0
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
	exitIO      = 74
)

// exitError carries the process exit code for a failed run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

type options struct {
	tokens    bool
	ast       bool
	dump      bool
	maxDepth  int
	recovery  bool
	hints     bool
	noColor   bool
	verbose   bool
	cacheSize int
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "golox [script]",
		Short: "Scan and parse Lox source",
		Long: `Scan and parse Lox source.

With a script argument the file is scanned and parsed once. Without one an
interactive prompt reads one line at a time.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := newDriver(opts, out, errOut)
			if len(args) == 1 {
				return d.runFile(args[0])
			}
			return d.runPrompt(in)
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	flags.BoolVar(&opts.tokens, "tokens", false, "print the token stream")
	flags.BoolVar(&opts.ast, "ast", true, "print each expression in prefix form")
	flags.BoolVar(&opts.dump, "dump", false, "print a detailed dump of the expression trees")
	flags.IntVar(&opts.maxDepth, "max-depth", 256, "maximum expression nesting depth")
	flags.BoolVar(&opts.recovery, "recovery", true, "keep parsing after a syntax error")
	flags.BoolVar(&opts.hints, "hints", true, "suggest fixes for likely typos")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored diagnostics")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.IntVar(&opts.cacheSize, "cache-size", 128, "number of compiled lines kept by the prompt")

	return cmd
}

// execute runs cmd and maps its error to an exit code.
func execute(cmd *cobra.Command, errOut io.Writer) int {
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(errOut, ee.err)
		}
		return ee.code
	}

	// Anything else comes from cobra: bad flags or too many arguments.
	fmt.Fprintln(errOut, err)
	fmt.Fprint(errOut, cmd.UsageString())
	return exitUsage
}

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	os.Exit(execute(cmd, os.Stderr))
}
