// Package argparse is a small command-line option parser.
//
// Options are registered on a Parser as flags (present or not) or parameters
// (take the next argument as their value), optionally grouped under
// categories for display. Parse then makes a single pass over the argument
// vector:
//
//	p := argparse.New()
//	verbose := p.Flag(argparse.Both('v', "verbose"), "Verbose output")
//	output := p.Param(argparse.Both('o', "output"), "Output file")
//
//	if err := p.Parse(os.Args); err != nil {
//		fmt.Fprintln(os.Stderr, err)
//		os.Exit(argparse.ExitCode(err))
//	}
//	fmt.Println(verbose.Value(), output.Value("out.txt"), p.Args())
//
// Short options can be clustered ("-abc" is "-a -b -c"); a parameter in a
// cluster must come last and takes the next argument. "--" ends option
// parsing and a lone "-" is a positional argument. Values are never joined to
// the option ("--output=file" and "-ofile" are not recognised).
//
// Registering an option under a name that is already taken moves the name to
// the new option. The older option keeps its other name, or is dropped if it
// has none left.
package argparse
