package argh

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vrtx/argh/internal/pool"
)

// Outcome is the aggregate result of one Parse pass: every recorded error
// plus the captured remainder tokens. Per-parameter set state lives on the
// parameters themselves.
type Outcome struct {
	Errors    []*ParseError
	Remainder []string
}

// OK reports whether the pass recorded zero errors.
func (o *Outcome) OK() bool {
	return len(o.Errors) == 0
}

// Outcomes are recycled between Parse calls; a second Parse on the same
// engine reuses the prior outcome's slice capacity.
var outcomePool = pool.NewWithReset(
	func() *Outcome {
		return &Outcome{
			Errors:    make([]*ParseError, 0, 4),
			Remainder: make([]string, 0, 8),
		}
	},
	func(o *Outcome) {
		o.Errors = o.Errors[:0]
		o.Remainder = o.Remainder[:0]
	},
)

// Parser scans an argument vector against a Registry, writing decoded
// values into each parameter's bound storage as it goes. It is a single
// left-to-right pass with a lookahead of at most one token and no I/O.
type Parser struct {
	reg     *Registry
	handler *ErrorHandler
	outcome *Outcome
}

// NewParser creates a parser over the given registry. The handler may be
// nil, in which case errors are recorded without enrichment.
func NewParser(reg *Registry, handler *ErrorHandler) *Parser {
	return &Parser{reg: reg, handler: handler}
}

// Outcome returns the result of the most recent Parse, or nil before the
// first call.
func (p *Parser) Outcome() *Outcome {
	return p.outcome
}

// Parse scans args left to right. Every successfully decoded token updates
// its parameter's bound storage immediately; malformed tokens are recorded
// and scanning continues, so one pass reports every problem it can find.
// There is no rollback on failure.
func (p *Parser) Parse(args []string) *Outcome {
	if p.outcome != nil {
		outcomePool.Put(p.outcome)
	}
	p.outcome = outcomePool.Get()

	// A fresh pass starts from a clean slate: set flags cleared and every
	// defaulted parameter's storage holding its default again.
	for _, prm := range p.reg.Params() {
		prm.clearSet()
		prm.applyDefault()
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case isLongToken(arg):
			i = p.parseLong(arg, args, i)
		case isShortToken(arg):
			i = p.parseShort(arg, args, i)
		default:
			// The first token that is not flag shaped starts the
			// remainder. Everything from here on is captured raw, even
			// tokens that look like flags.
			p.outcome.Remainder = append(p.outcome.Remainder, args[i:]...)
			return p.outcome
		}
	}

	return p.outcome
}

// isLongToken reports whether arg has the --name shape. A bare "--" has no
// name and therefore falls through to the remainder rule.
func isLongToken(arg string) bool {
	return len(arg) > 2 && arg[0] == '-' && arg[1] == '-'
}

// isShortToken reports whether arg has the -k shape: a single dash
// followed by at least one letter. This keeps negative numbers out of the
// flag namespace.
func isShortToken(arg string) bool {
	return len(arg) >= 2 && arg[0] == '-' && isLetter(arg[1])
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// parseLong handles --name, --name=value and --name value. It returns the
// index of the last token it consumed.
func (p *Parser) parseLong(arg string, args []string, i int) int {
	name, val, hasVal := strings.Cut(arg[2:], "=")

	prm, ok := p.reg.LookupName(name)
	if !ok {
		p.record(&ParseError{
			Type:    ErrorTypeUnknownName,
			Message: fmt.Sprintf("unknown option name '%s'", name),
			Token:   arg,
			Flag:    name,
		})
		return i
	}

	if hasVal {
		// A '=' value always wins over lookahead. Flag parameters force
		// true regardless, so the attached text is simply discarded.
		p.assign(prm, val, arg)
		return i
	}
	if !prm.TakesValue() {
		p.assign(prm, "", arg)
		return i
	}
	if i+1 >= len(args) {
		p.record(&ParseError{
			Type:    ErrorTypeMissingValue,
			Message: fmt.Sprintf("option --%s requires a value", name),
			Token:   arg,
			Flag:    name,
			Param:   prm,
		})
		return i
	}

	// Greedy association: the next token is the value, no matter what it
	// looks like.
	p.assign(prm, args[i+1], args[i+1])
	return i + 1
}

// parseShort handles -k, -k value, -k=value and concatenated clusters like
// -dvi. Every key except the last must resolve to a presence-only flag;
// the last key follows the same value rules as a lone short option. It
// returns the index of the last token it consumed.
func (p *Parser) parseShort(arg string, args []string, i int) int {
	cluster, val, hasVal := strings.Cut(arg[1:], "=")

	for n := 0; n < len(cluster); n++ {
		key := cluster[n]

		prm, ok := p.reg.LookupKey(key)
		if !ok {
			// Abandon the rest of this cluster; the overall scan
			// continues with the next token.
			p.record(&ParseError{
				Type:    ErrorTypeUnknownKey,
				Message: fmt.Sprintf("unknown option key '%c'", key),
				Token:   arg,
				Flag:    string(key),
			})
			return i
		}

		if n < len(cluster)-1 {
			if prm.TakesValue() {
				p.record(&ParseError{
					Type:    ErrorTypeMissingValue,
					Message: fmt.Sprintf("option -%c requires a value and cannot precede other keys in a cluster", key),
					Token:   arg,
					Flag:    string(key),
					Param:   prm,
				})
				return i
			}
			p.assign(prm, "", arg)
			continue
		}

		// Last key in the cluster.
		switch {
		case hasVal:
			p.assign(prm, val, arg)
		case !prm.TakesValue():
			p.assign(prm, "", arg)
		case i+1 < len(args):
			i++
			p.assign(prm, args[i], args[i])
		default:
			p.record(&ParseError{
				Type:    ErrorTypeMissingValue,
				Message: fmt.Sprintf("option -%c requires a value", key),
				Token:   arg,
				Flag:    string(key),
				Param:   prm,
			})
		}
	}

	return i
}

// assign decodes token into prm's bound storage, recording a ParseError
// when the codec rejects it. Storage stays untouched on failure.
func (p *Parser) assign(prm Param, token, source string) {
	err := prm.ParseValue(token)
	if err == nil {
		return
	}

	pe := &ParseError{
		Type:    ErrorTypeInvalidArgument,
		Message: fmt.Sprintf("invalid value for --%s", prm.Name()),
		Token:   source,
		Flag:    prm.Name(),
		Param:   prm,
	}
	var ce *ConversionError
	if errors.As(err, &ce) {
		pe.Type = ce.Kind
		pe.Details = ce.Details
		if ce.Kind == ErrorTypeOutOfRange {
			pe.Message = fmt.Sprintf("value out of range for --%s", prm.Name())
		}
	}
	p.record(pe)
}

func (p *Parser) record(pe *ParseError) {
	if p.handler != nil {
		pe = p.handler.ProcessError(pe, p.reg)
	}
	p.outcome.Errors = append(p.outcome.Errors, pe)
}
