package argh

import (
	"strings"
	"testing"
)

func newHelpFixture(t *testing.T) (*Registry, *HelpFormatter) {
	t.Helper()
	var in, tmp string
	var dbg, verb bool

	reg := NewRegistry()
	params := []Param{
		&parameter[string]{out: &in, key: 'i', name: "input", help: "Specify the input file", codec: StringCodec(), defVal: "./in.foo", hasDef: true},
		&parameter[string]{out: &tmp, key: 't', name: "temp", help: "Path for temporary files", codec: StringCodec(), defVal: "/tmp/", hasDef: true},
		&parameter[bool]{out: &dbg, key: 'd', name: "debug", help: "Start in daemon mode", codec: BoolCodec()},
		&parameter[bool]{out: &verb, key: 'v', name: "verbose", help: "Level of verbosity", codec: BoolCodec()},
	}
	for _, p := range params {
		if err := reg.Register(p); err != nil {
			t.Fatalf("register %s: %v", p.Name(), err)
		}
	}
	return reg, NewHelpFormatter(reg, "foo")
}

func TestUsageBanner(t *testing.T) {
	_, h := newHelpFixture(t)

	if got := h.Usage(); got != "Usage: foo -itdv" {
		t.Errorf("Usage = %q", got)
	}

	h.SetRemainderName("output path")
	if got := h.Usage(); got != "Usage: foo -itdv <output path>" {
		t.Errorf("Usage with remainder = %q", got)
	}
}

func TestUsageBannerEmptyRegistry(t *testing.T) {
	h := NewHelpFormatter(NewRegistry(), "foo")
	if got := h.Usage(); got != "Usage: foo" {
		t.Errorf("Usage = %q; no key group should render for an empty registry", got)
	}
}

func TestHelpBeginsWithUsage(t *testing.T) {
	_, h := newHelpFixture(t)
	h.SetRemainderName("output path")

	help := h.Help()
	if !strings.HasPrefix(help, h.Usage()+"\n") {
		t.Errorf("help must begin with the exact usage text:\n%s", help)
	}
}

func TestHelpListsParametersInOrder(t *testing.T) {
	reg, h := newHelpFixture(t)

	lines := strings.Split(h.Help(), "\n")
	// Banner, one line per parameter, then the trailing blank line.
	if want := reg.Len() + 2; len(lines) != want+1 { // +1 for Split's final ""
		t.Fatalf("help has %d lines, want %d:\n%s", len(lines), want+1, h.Help())
	}

	order := []string{"--input", "--temp", "--debug", "--verbose"}
	for i, name := range order {
		if !strings.Contains(lines[i+1], name) {
			t.Errorf("line %d = %q, want it to describe %s", i+1, lines[i+1], name)
		}
	}
}

func TestHelpEndsWithBlankLine(t *testing.T) {
	_, h := newHelpFixture(t)
	if !strings.HasSuffix(h.Help(), "\n\n") {
		t.Error("help must terminate with a blank line")
	}
}
