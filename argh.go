package argh

import (
	"fmt"
	"strings"
)

// Args is the front door of the engine. A caller registers parameters
// bound to its own storage, then asks for a parse of the argument vector
// and inspects the outcome.
type Args struct {
	reg     *Registry
	parser  *Parser
	help    *HelpFormatter
	handler *ErrorHandler
	outcome *Outcome
}

// New creates an engine for the given process name. The name only feeds
// the usage banner; pass os.Args[0] or any label you prefer.
func New(procName string) *Args {
	reg := NewRegistry()
	handler := NewErrorHandler()
	return &Args{
		reg:     reg,
		handler: handler,
		parser:  NewParser(reg, handler),
		help:    NewHelpFormatter(reg, procName),
	}
}

// Fluent configuration

// SuggestNames enables "did you mean" suggestions for unknown long names.
func (a *Args) SuggestNames(enabled bool) *Args {
	a.handler.SuggestNames(enabled)
	return a
}

// MaxDistance sets the maximum edit distance for name suggestions.
func (a *Args) MaxDistance(distance int) *Args {
	a.handler.MaxDistance(distance)
	return a
}

// Remainder sets the help label for trailing unparsed tokens.
func (a *Args) Remainder(name string) *Args {
	a.help.SetRemainderName(name)
	return a
}

// Registration

// Arg registers a parameter of a built-in type, bound to out. The storage
// is borrowed from the caller and must outlive every Parse call.
func Arg[T any](a *Args, out *T, key byte, name, help string) error {
	c, ok := codecFor[T]()
	if !ok {
		return unsupportedType(out)
	}
	return a.reg.Register(&parameter[T]{
		out:   out,
		key:   key,
		name:  name,
		help:  help,
		codec: c,
	})
}

// ArgDefault registers a parameter with a default value. The default is
// written into out immediately, so the storage holds it from the moment of
// registration; a later Parse only overwrites it on a successful decode.
func ArgDefault[T any](a *Args, out *T, key byte, name, help string, def T) error {
	c, ok := codecFor[T]()
	if !ok {
		return unsupportedType(out)
	}
	return a.registerDefault(&parameter[T]{
		out:    out,
		key:    key,
		name:   name,
		help:   help,
		codec:  c,
		defVal: def,
		hasDef: true,
	})
}

// ArgWith registers a parameter with a caller-supplied codec, keeping the
// semantic type set open beyond the built-ins.
func ArgWith[T any](a *Args, out *T, key byte, name, help string, codec Codec[T]) error {
	return a.reg.Register(&parameter[T]{
		out:   out,
		key:   key,
		name:  name,
		help:  help,
		codec: codec,
	})
}

// ArgWithDefault registers a parameter with a caller-supplied codec and a
// default value.
func ArgWithDefault[T any](a *Args, out *T, key byte, name, help string, codec Codec[T], def T) error {
	return a.registerDefault(&parameter[T]{
		out:    out,
		key:    key,
		name:   name,
		help:   help,
		codec:  codec,
		defVal: def,
		hasDef: true,
	})
}

func (a *Args) registerDefault(p Param) error {
	if err := a.reg.Register(p); err != nil {
		return err
	}
	p.applyDefault()
	return nil
}

func unsupportedType[T any](out *T) error {
	return registerErrorf(ErrorTypeUnsupportedType,
		"no built-in codec for %T, register with ArgWith", *out)
}

// Parsing and inspection

// Parse scans argv (the tokens after the program name) and returns true
// iff no errors were recorded. Successfully decoded parameters have
// already updated their bound storage regardless of the overall result,
// and the remainder has been captured; a failed parse rolls nothing back.
func (a *Args) Parse(argv []string) bool {
	a.outcome = a.parser.Parse(argv)
	return a.outcome.OK()
}

// Remaining returns the remainder tokens captured by the last Parse.
func (a *Args) Remaining() []string {
	if a.outcome == nil {
		return nil
	}
	return a.outcome.Remainder
}

// ParseErrors returns the structured errors recorded by the last Parse.
func (a *Args) ParseErrors() []*ParseError {
	if a.outcome == nil {
		return nil
	}
	return a.outcome.Errors
}

// Errors returns the accumulated error text from the last Parse, one
// error per line, annotated with the offending token where available.
// Returns "" when the last Parse succeeded.
func (a *Args) Errors() string {
	if a.outcome == nil || len(a.outcome.Errors) == 0 {
		return ""
	}
	var b strings.Builder
	for _, pe := range a.outcome.Errors {
		b.WriteString("Error: ")
		b.WriteString(pe.Message)
		if pe.Token != "" {
			fmt.Fprintf(&b, " @ [%s]", pe.Token)
		}
		b.WriteByte('\n')
		if pe.Details != "" {
			fmt.Fprintf(&b, "  %s\n", pe.Details)
		}
		if pe.Suggestion != "" {
			fmt.Fprintf(&b, "  %s\n", pe.Suggestion)
		}
	}
	return b.String()
}

// Usage returns the one-line usage banner.
func (a *Args) Usage() string {
	return a.help.Usage()
}

// Help returns the full help text: the usage banner plus one line per
// registered parameter in registration order.
func (a *Args) Help() string {
	return a.help.Help()
}

// IsSet reports whether the parameter registered under name was assigned
// from the command line by the last Parse.
func (a *Args) IsSet(name string) bool {
	if p, ok := a.reg.LookupName(name); ok {
		return p.IsSet()
	}
	return false
}

// Registry exposes the underlying registry for direct lookups.
func (a *Args) Registry() *Registry {
	return a.reg
}
