// Command argparse-demo registers a handful of options, parses os.Args and
// prints what it found.
//
//	argparse-demo -vn --output report.txt a b -- -c
//
// Set ARGPARSE_TRACE=1 to see the parser's debug trace on stderr.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/dzonerzy/go-argparse/argparse"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgYellow)
	headingColor = color.New(color.Bold, color.Underline)
	nameColor    = color.New(color.FgCyan)
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	if os.Getenv("ARGPARSE_TRACE") != "" {
		level.Set(slog.LevelDebug)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	p := argparse.New().Logger(logger).SuggestOptions(true)

	p.Category("General")
	help := p.Flag(argparse.Both('h', "help"), "Show this help")
	verbose := p.Flag(argparse.Both('v', "verbose"), "Print every option, set or not")
	dryRun := p.Flag(argparse.Both('n', "dry-run"), "Do not write anything")

	p.Category("Output")
	output := p.Param(argparse.Both('o', "output"), "Output file")
	format := p.Param(argparse.Long("format"), "Output format (text, json)")

	if err := p.Parse(args); err != nil {
		reportError(stderr, err)
		return argparse.ExitCode(err)
	}

	if help.Value() {
		printUsage(stdout, p)
		return 0
	}

	prog, _ := p.ProgramName()
	fmt.Fprintf(stdout, "%s: output=%s format=%s dry-run=%t\n",
		prog, output.Value("-"), format.Value("text"), dryRun.Value())

	if verbose.Value() {
		for _, o := range p.Options() {
			if o.Kind() == argparse.KindCategory {
				continue
			}
			state := "unset"
			if o.IsSet() {
				state = "set"
			}
			fmt.Fprintf(stdout, "  %-20s %s\n", o.DisplayName(), state)
		}
	}

	if len(p.Args()) > 0 {
		fmt.Fprintf(stdout, "args: %s\n", strings.Join(p.Args(), " "))
	}
	return 0
}

func reportError(w io.Writer, err error) {
	errorColor.Fprint(w, "error: ")
	fmt.Fprintln(w, err)

	var perr *argparse.ParseError
	if errors.As(err, &perr) && perr.Suggestion != "" {
		hintColor.Fprintf(w, "did you mean '%s'?\n", perr.Suggestion)
	}
}

func printUsage(w io.Writer, p *argparse.Parser) {
	prog, _ := p.ProgramName()
	fmt.Fprintf(w, "Usage: %s [options] [--] [args...]\n", prog)

	for _, o := range p.Options() {
		if o.Kind() == argparse.KindCategory {
			fmt.Fprintln(w)
			headingColor.Fprintln(w, o.Description())
			continue
		}
		name := o.DisplayName()
		if o.Kind() == argparse.KindParam {
			name += " <value>"
		}
		fmt.Fprintf(w, "  %s%s %s\n", nameColor.Sprint(name), strings.Repeat(" ", max(1, 24-len(name))), o.Description())
	}
}
