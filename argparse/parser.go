package argparse

import (
	"log/slog"
	"unicode/utf8"

	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/intern"
)

// ParseState represents the current state of the parser state machine
type ParseState int

const (
	StateInit ParseState = iota
	StateOptions
	StatePositionalArgs
	StateComplete
	StateError
)

// suggestionDistance is the max edit distance for "did you mean" suggestions
const suggestionDistance = 2

// Parser holds the registered options and, once Parse has run, the parsed
// program name and positional arguments. A Parser parses exactly once.
type Parser struct {
	opts []*option

	progname string
	args     []string

	// Parser state
	state    ParseState
	position int

	logger  *slog.Logger
	suggest bool
}

// New creates an empty parser
func New() *Parser {
	return &Parser{
		logger: slog.New(discardHandler{}),
	}
}

// Parser configuration methods

// Logger sets the logger used for debug tracing of registration and parsing.
// A nil logger disables tracing.
func (p *Parser) Logger(l *slog.Logger) *Parser {
	if l == nil {
		l = slog.New(discardHandler{})
	}
	p.logger = l
	return p
}

// SuggestOptions enables/disables "did you mean" suggestions for unknown
// long options (see ParseError.Suggestion)
func (p *Parser) SuggestOptions(enabled bool) *Parser {
	p.suggest = enabled
	return p
}

// Parse parses the argument vector, where args[0] is the program name.
// Matched options are updated in place and every other argument is
// collected in order, see Args. Parsing stops at the first error; options
// matched before it keep their values.
//
// Parse panics if it is called twice or if args is empty.
func (p *Parser) Parse(args []string) error {
	if p.state != StateInit {
		panic("argparse: arguments already parsed")
	}
	if len(args) < 1 {
		panic("argparse: argument vector must start with the program name")
	}

	p.progname = args[0]
	p.state = StateOptions

	// Main parsing loop - single pass, left to right
	for p.position = 1; p.position < len(args); p.position++ {
		if err := p.parseArgument(args[p.position], args); err != nil {
			return p.fail(err)
		}
	}

	p.state = StateComplete
	p.logger.Debug("parsed arguments",
		slog.String("program", p.progname),
		slog.Int("args", len(p.args)))
	return nil
}

// parseArgument handles a single argument based on parser state
func (p *Parser) parseArgument(arg string, allArgs []string) *ParseError {
	// After "--" everything is positional
	if p.state == StatePositionalArgs {
		p.args = append(p.args, arg)
		return nil
	}

	switch {
	case len(arg) < 2 || arg[0] != '-':
		// Plain argument or a single dash "-"
		p.args = append(p.args, arg)
		return nil
	case arg == "--":
		p.state = StatePositionalArgs
		return nil
	case arg[1] == '-':
		return p.parseLong(arg, allArgs)
	default:
		return p.parseShort(arg, allArgs)
	}
}

// parseLong parses a long option, "--name"
func (p *Parser) parseLong(arg string, allArgs []string) *ParseError {
	opt := p.lookupLong(arg[2:])
	if opt == nil {
		return p.unknownLong(arg)
	}

	switch opt.kind {
	case KindFlag:
		opt.set = true
	case KindParam:
		// Value is the next argument
		if p.position+1 >= len(allArgs) {
			return newMissingArgument(arg)
		}
		p.position++
		opt.value = allArgs[p.position]
		opt.set = true
	case KindCategory:
		panic("argparse: category matched as an option")
	}
	return nil
}

// parseShort parses a cluster of short options, "-a" or "-abc"
func (p *Parser) parseShort(arg string, allArgs []string) *ParseError {
	cluster := arg[1:]

	for i := 0; i < len(cluster); i++ {
		c := cluster[i]

		opt := p.lookupShort(c)
		if opt == nil {
			return newUnknownOption(shortDisplay(cluster[i:]))
		}

		switch opt.kind {
		case KindFlag:
			opt.set = true
		case KindParam:
			// A parameter has to end the cluster, its value is the next argument
			if i != len(cluster)-1 || p.position+1 >= len(allArgs) {
				return newMissingArgument(intern.Short(c))
			}
			p.position++
			opt.value = allArgs[p.position]
			opt.set = true
		case KindCategory:
			panic("argparse: category matched as an option")
		}
	}
	return nil
}

// lookupShort finds the live option holding short name c
func (p *Parser) lookupShort(c byte) *option {
	if c == 0 {
		return nil
	}
	for _, o := range p.opts {
		if o.kind != KindCategory && o.short == c {
			return o
		}
	}
	return nil
}

// lookupLong finds the live option holding long name name
func (p *Parser) lookupLong(name string) *option {
	if name == "" {
		return nil
	}
	for _, o := range p.opts {
		if o.kind != KindCategory && o.long == name {
			return o
		}
	}
	return nil
}

// unknownLong creates an unknown option error, with a suggestion if enabled
func (p *Parser) unknownLong(arg string) *ParseError {
	err := newUnknownOption(arg)
	if !p.suggest {
		return err
	}

	names := make([]string, 0, len(p.opts))
	for _, o := range p.opts {
		if o.kind != KindCategory && o.long != "" {
			names = append(names, o.long)
		}
	}
	if best := fuzzy.FindBestOption(arg[2:], names, suggestionDistance); best != "" {
		err.Suggestion = intern.Long(best)
	}
	return err
}

func (p *Parser) fail(err *ParseError) error {
	p.state = StateError
	p.logger.Debug("parse failed",
		slog.String("error", string(err.Type)),
		slog.String("option", err.Option),
		slog.Int("position", p.position))
	return err
}

// shortDisplay returns the "-c" name for the short option starting s.
// A multi-byte character is reported whole rather than as its first byte.
func shortDisplay(s string) string {
	if s[0] < utf8.RuneSelf {
		return intern.Short(s[0])
	}
	_, size := utf8.DecodeRuneInString(s)
	return "-" + s[:size]
}

// Read access

// ProgramName returns args[0] as passed to Parse.
// It reports false if Parse has not been called yet.
func (p *Parser) ProgramName() (string, bool) {
	if p.state == StateInit {
		return "", false
	}
	return p.progname, true
}

// Options returns the registered options and categories in registration order.
func (p *Parser) Options() []Option {
	opts := make([]Option, len(p.opts))
	for i, o := range p.opts {
		opts[i] = Option{o}
	}
	return opts
}

// Args returns the positional arguments in the order they were given.
func (p *Parser) Args() []string {
	args := make([]string, len(p.args))
	copy(args, p.args)
	return args
}

// State returns the parser state
func (p *Parser) State() ParseState {
	return p.state
}
