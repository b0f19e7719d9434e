package argh

import "strings"

// HelpFormatter renders the usage banner and full help text from a
// Registry. It only reads; rendering never mutates engine state.
type HelpFormatter struct {
	reg           *Registry
	procName      string
	remainderName string
}

// NewHelpFormatter creates a formatter for the given registry and process
// name.
func NewHelpFormatter(reg *Registry, procName string) *HelpFormatter {
	return &HelpFormatter{reg: reg, procName: procName}
}

// SetRemainderName sets the label shown for trailing unparsed tokens.
func (h *HelpFormatter) SetRemainderName(name string) {
	h.remainderName = name
}

// Usage returns the one-line banner: the process name, the concatenated
// short keys, and the remainder label in angle brackets when one was set.
func (h *HelpFormatter) Usage() string {
	var b strings.Builder
	b.WriteString("Usage: ")
	b.WriteString(h.procName)
	if h.reg.Len() > 0 {
		b.WriteString(" -")
		for _, prm := range h.reg.Params() {
			b.WriteString(prm.Usage())
		}
	}
	if h.remainderName != "" {
		b.WriteString(" <")
		b.WriteString(h.remainderName)
		b.WriteString(">")
	}
	return b.String()
}

// Help returns the usage banner followed by one help line per parameter in
// registration order, terminated by a blank line.
func (h *HelpFormatter) Help() string {
	var b strings.Builder
	b.WriteString(h.Usage())
	b.WriteByte('\n')
	for _, prm := range h.reg.Params() {
		b.WriteString(prm.Help())
	}
	b.WriteByte('\n')
	return b.String()
}
