package argh

import (
	"strings"
	"testing"
)

func TestParameterParseValueSuccess(t *testing.T) {
	var out int
	p := &parameter[int]{out: &out, key: 'n', name: "num", codec: IntCodec()}

	if err := p.ParseValue("41"); err != nil {
		t.Fatalf("ParseValue failed: %v", err)
	}
	if out != 41 {
		t.Errorf("bound storage = %d, want 41", out)
	}
	if !p.IsSet() {
		t.Error("IsSet must be true after a successful assignment")
	}
}

func TestParameterParseValueFailureLeavesStorage(t *testing.T) {
	out := 7
	p := &parameter[int]{out: &out, key: 'n', name: "num", codec: IntCodec()}

	if err := p.ParseValue("nope"); err == nil {
		t.Fatal("expected decode failure")
	}
	if out != 7 {
		t.Errorf("bound storage modified on failure: %d", out)
	}
	if p.IsSet() {
		t.Error("IsSet must stay false on failure")
	}
}

func TestParameterDefault(t *testing.T) {
	var out string
	p := &parameter[string]{
		out: &out, key: 'i', name: "input", codec: StringCodec(),
		defVal: "./in.foo", hasDef: true,
	}

	if got := p.DefaultStr(); got != "./in.foo" {
		t.Errorf("DefaultStr = %q", got)
	}
	p.applyDefault()
	if out != "./in.foo" {
		t.Errorf("applyDefault wrote %q", out)
	}

	// No default: DefaultStr is empty and applyDefault is a no-op.
	var other float64 = 3
	q := &parameter[float64]{out: &other, key: 'r', name: "rate", codec: FloatCodec()}
	if q.DefaultStr() != "" {
		t.Errorf("DefaultStr without default = %q", q.DefaultStr())
	}
	q.applyDefault()
	if other != 3 {
		t.Error("applyDefault without default must not touch storage")
	}
}

func TestParameterHelpLine(t *testing.T) {
	var out string
	p := &parameter[string]{
		out: &out, key: 'i', name: "input", help: "Specify the input file",
		codec: StringCodec(), defVal: "./in.foo", hasDef: true,
	}

	line := p.Help()
	if !strings.HasSuffix(line, "\n") {
		t.Error("help line must be newline terminated")
	}
	for _, want := range []string{" -i", "--input", "[default: ./in.foo]", "Specify the input file"} {
		if !strings.Contains(line, want) {
			t.Errorf("help line missing %q: %q", want, line)
		}
	}

	// Without a default the default column stays blank.
	var flag bool
	q := &parameter[bool]{out: &flag, key: 'd', name: "debug", help: "Debug mode", codec: BoolCodec()}
	if strings.Contains(q.Help(), "default") {
		t.Errorf("unexpected default column: %q", q.Help())
	}
}

func TestParameterUsage(t *testing.T) {
	var out bool
	p := &parameter[bool]{out: &out, key: 'v', name: "verbose", codec: BoolCodec()}
	if got := p.Usage(); got != "v" {
		t.Errorf("Usage = %q, want the bare key character", got)
	}
	if p.TakesValue() {
		t.Error("flag parameter must not take a value")
	}
}
