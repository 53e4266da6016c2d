package evaluator

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/luna-lang/luna/lexer"
	"github.com/luna-lang/luna/object"
	"github.com/luna-lang/luna/parser"
	"github.com/luna-lang/luna/report"
)

type scriptFixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Stdin  string `yaml:"stdin"`
	Output string `yaml:"output"`
}

// Whole scripts run end-to-end against recorded output.
func TestScripts(t *testing.T) {
	data, err := os.ReadFile("testdata/scripts.yaml")
	if err != nil {
		t.Fatalf("could not read fixtures: %v", err)
	}

	var fixtures []scriptFixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("could not parse fixtures: %v", err)
	}

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			report.SetOutput(io.Discard)
			defer report.SetOutput(nil)

			p := parser.New(lexer.New(fx.Source))
			prog := p.Parse()
			if prog == nil {
				t.Fatalf("script did not parse")
			}

			var out bytes.Buffer
			env := object.NewEnvironment()
			New(strings.NewReader(fx.Stdin), &out).Run(prog, env)

			if out.String() != fx.Output {
				t.Fatalf("output wrong. expected=%q, got=%q", fx.Output, out.String())
			}
		})
	}
}
