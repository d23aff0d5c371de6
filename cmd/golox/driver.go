package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/sandrolain/golox"
	"github.com/sandrolain/golox/pkg/cache"
	"github.com/sandrolain/golox/pkg/printer"
	"github.com/sandrolain/golox/pkg/types"
)

const prompt = "> "

// driver feeds source text to the front end and reports the results.
// Every file or prompt line is an independent run with its own diagnostics.
type driver struct {
	opts     *options
	out      io.Writer
	errOut   io.Writer
	log      *logrus.Logger
	cache    *cache.Cache // prompt only
	errColor *color.Color
}

func newDriver(opts *options, out, errOut io.Writer) *driver {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if opts.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	errColor := color.New(color.FgRed)
	if opts.noColor {
		errColor.DisableColor()
	}

	return &driver{
		opts:     opts,
		out:      out,
		errOut:   errOut,
		log:      log,
		errColor: errColor,
	}
}

func (d *driver) compileOptions() []golox.Option {
	return []golox.Option{
		golox.WithMaxDepth(d.opts.maxDepth),
		golox.WithRecovery(d.opts.recovery),
		golox.WithHints(d.opts.hints),
	}
}

// compileLine returns the program for one prompt line, reusing the cached
// result when the same line was entered before.
func (d *driver) compileLine(source string) (*types.Program, bool) {
	compiled := false
	prog := d.cache.GetOrCompile(source, func() *types.Program {
		compiled = true
		return golox.Run(source, d.compileOptions()...)
	})
	return prog, !compiled
}

// report prints the requested views of prog and its diagnostics.
func (d *driver) report(prog *types.Program, cached bool) error {
	d.log.WithFields(logrus.Fields{
		"bytes":       len(prog.Source()),
		"tokens":      len(prog.Tokens()),
		"exprs":       len(prog.Exprs()),
		"diagnostics": prog.Diagnostics().Len(),
		"cached":      cached,
	}).Debug("processed source")

	if d.opts.tokens {
		if err := printer.Tokens(d.out, prog.Tokens()); err != nil {
			return errors.Wrap(err, "writing tokens")
		}
	}
	if d.opts.ast {
		for _, e := range prog.Exprs() {
			if _, err := fmt.Fprintln(d.out, printer.Print(e)); err != nil {
				return errors.Wrap(err, "writing expression")
			}
		}
	}
	if d.opts.dump && len(prog.Exprs()) > 0 {
		if _, err := fmt.Fprint(d.out, printer.Dump(prog.Exprs())); err != nil {
			return errors.Wrap(err, "writing dump")
		}
	}

	for _, diag := range prog.Diagnostics().Sorted() {
		d.errColor.Fprintln(d.errOut, diag.Error())
	}
	return nil
}

// runFile processes a whole file. Any diagnostic fails the run.
func (d *driver) runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &exitError{code: exitNoInput, err: errors.Wrapf(err, "reading script %s", path)}
	}

	prog := golox.Run(string(data), d.compileOptions()...)
	if err := d.report(prog, false); err != nil {
		return &exitError{code: exitIO, err: err}
	}
	if prog.HadError() {
		return &exitError{code: exitData}
	}
	return nil
}

// runPrompt processes one line at a time until end of input. Diagnostics on
// one line do not affect the next or the exit status. Lines have no length
// limit; a final line without a newline is still processed.
func (d *driver) runPrompt(in io.Reader) error {
	d.cache = cache.New(d.opts.cacheSize)

	br := bufio.NewReader(in)
	for {
		fmt.Fprint(d.out, prompt)
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return &exitError{code: exitIO, err: errors.Wrap(err, "reading input")}
		}
		if line != "" {
			prog, cached := d.compileLine(strings.TrimRight(line, "\r\n"))
			if rerr := d.report(prog, cached); rerr != nil {
				return &exitError{code: exitIO, err: rerr}
			}
		}
		if err == io.EOF {
			break
		}
	}
	fmt.Fprintln(d.out)

	hits, misses := d.cache.Stats()
	d.log.WithFields(logrus.Fields{"hits": hits, "misses": misses}).Debug("prompt closed")
	return nil
}
