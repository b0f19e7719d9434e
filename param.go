package argh

import "fmt"

// Param is the type-erased view of one registered parameter. The registry
// and parser dispatch through this interface without knowledge of the
// concrete value type.
type Param interface {
	// Key returns the single-character short form identity.
	Key() byte
	// Name returns the long form identity.
	Name() string
	// IsSet reports whether the last Parse assigned a value from the
	// command line. Defaults do not count as set.
	IsSet() bool
	// TakesValue reports whether the parameter consumes a value token.
	// Presence-only flags return false.
	TakesValue() bool
	// ParseValue decodes token into the bound storage and marks the
	// parameter set. On failure the storage is left untouched, IsSet
	// stays false, and the returned error is a *ConversionError.
	ParseValue(token string) error
	// Usage returns the bare key character for the usage banner.
	Usage() string
	// Help returns the parameter's formatted, newline-terminated help line.
	Help() string
	// DefaultStr returns the rendered default value, or "" when none.
	DefaultStr() string

	applyDefault()
	clearSet()
}

// parameter binds a Codec to caller-owned storage. The storage pointer is
// borrowed, never owned; it must stay valid for the duration of any Parse
// call and the engine never allocates or frees it.
type parameter[T any] struct {
	out    *T
	key    byte
	name   string
	help   string
	codec  Codec[T]
	defVal T
	hasDef bool
	isSet  bool
}

func (p *parameter[T]) Key() byte        { return p.key }
func (p *parameter[T]) Name() string     { return p.name }
func (p *parameter[T]) IsSet() bool      { return p.isSet }
func (p *parameter[T]) TakesValue() bool { return !p.codec.Flag }
func (p *parameter[T]) Usage() string    { return string(p.key) }

func (p *parameter[T]) DefaultStr() string {
	if !p.hasDef {
		return ""
	}
	return p.codec.Render(p.defVal)
}

func (p *parameter[T]) ParseValue(token string) error {
	v, err := p.codec.Decode(token)
	if err != nil {
		return err
	}
	*p.out = v
	p.isSet = true
	return nil
}

// Help renders the short key, long name, default and description columns.
func (p *parameter[T]) Help() string {
	def := ""
	if p.hasDef {
		def = "[default: " + p.DefaultStr() + "] "
	}
	return fmt.Sprintf("%-5s%-14s%-24s%s\n",
		" -"+string(p.key), "  --"+p.name, def, p.help)
}

func (p *parameter[T]) applyDefault() {
	if p.hasDef {
		*p.out = p.defVal
	}
}

func (p *parameter[T]) clearSet() {
	p.isSet = false
}
