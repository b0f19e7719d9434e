// Package argh is a small declarative command line argument parsing
// engine. Callers register typed parameters bound to their own storage
// under a single-character key and a long name, optionally with a default
// value and help text, then parse an argument vector.
//
// Recognized syntax:
//
//	-k              short flag (boolean: present means true)
//	-k value        short key with lookahead value
//	-k=value        short key with attached value
//	-abc            concatenated flags; a trailing non-flag key takes a value
//	--name          long form, same value rules
//	--name=value
//	--name value
//
// The first token that does not look like a flag starts the remainder;
// everything from that point on is captured raw. All named arguments must
// therefore precede the remainder.
//
// Parsing accumulates errors instead of stopping at the first problem, so
// a single run reports every malformed token it can find. Successfully
// decoded parameters update their bound storage even when the overall
// parse fails.
//
//	var opts struct {
//		Infile  string
//		Debug   bool
//		Rate    float64
//	}
//	args := argh.New("foo")
//	argh.ArgDefault(args, &opts.Infile, 'i', "input", "Input file", "./in.foo")
//	argh.Arg(args, &opts.Debug, 'd', "debug", "Enable debug output")
//	argh.ArgDefault(args, &opts.Rate, 'r', "rate", "Sample rate", 1.0)
//	args.Remainder("output path")
//	if !args.Parse(os.Args[1:]) {
//		fmt.Print(args.Errors())
//		fmt.Print(args.Help())
//	}
package argh
