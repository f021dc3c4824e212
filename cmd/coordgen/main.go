// Command coordgen writes the arithmetic, ordering and conversion methods that
// make a single-value wrapper type satisfy coord.Coordinate.
//
// Usage (from a go:generate directive):
//
//	go run ../cmd/coordgen -type Orthogonal -base int32 -min "-1 << 24" -max "1 << 24" -out orthogonal_generated.go
//
// Integer-backed types round on conversion from float32 and reject values
// outside [min, max]. Pass -custom to leave Float32 and FromFloat32 to the
// wrapper itself.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"go.uber.org/zap"
)

const coordImport = "github.com/pthm-cable/planar/coord"

// Wrapper describes one wrapper type to generate.
type Wrapper struct {
	Package string
	Type    string
	Base    string
	Min     string
	Max     string
	Scale   string
	Custom  bool
}

// Integer reports whether the wrapped type is an integer.
func (s Wrapper) Integer() bool {
	return !strings.HasPrefix(s.Base, "float")
}

// Qual is the qualifier for identifiers from the coord package.
func (s Wrapper) Qual() string {
	if s.Package == "coord" {
		return ""
	}
	return "coord."
}

// Imports lists the packages the generated file needs.
func (s Wrapper) Imports() []string {
	imports := []string{}
	if !s.Integer() || !s.Custom || strings.Contains(s.Min+s.Max, "math.") {
		imports = append(imports, "math")
	}
	if s.Integer() && !s.Custom && s.Qual() != "" {
		imports = append(imports, coordImport)
	}
	return imports
}

// Receiver is the short receiver name used in generated methods.
func (s Wrapper) Receiver() string {
	return strings.ToLower(s.Type[:1])
}

var fileTemplate = template.Must(template.New("coord").Parse(`// Code generated by coordgen. DO NOT EDIT.

package {{.Package}}
{{if .Imports}}
import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{end}}
{{$r := .Receiver}}{{$t := .Type}}
// Add returns {{$r}} + other.
func ({{$r}} {{$t}}) Add(other {{$t}}) {{$t}} { return {{$r}} + other }

// Sub returns {{$r}} - other.
func ({{$r}} {{$t}}) Sub(other {{$t}}) {{$t}} { return {{$r}} - other }

// Mul returns {{$r}} * other.
func ({{$r}} {{$t}}) Mul(other {{$t}}) {{$t}} { return {{$r}} * other }

// Div returns {{$r}} / other.
func ({{$r}} {{$t}}) Div(other {{$t}}) {{$t}} { return {{$r}} / other }

// Rem returns the remainder of {{$r}} / other, with the sign of {{$r}}.
{{- if .Integer}}
func ({{$r}} {{$t}}) Rem(other {{$t}}) {{$t}} { return {{$r}} % other }
{{- else}}
func ({{$r}} {{$t}}) Rem(other {{$t}}) {{$t}} { return {{$t}}(math.Mod(float64({{$r}}), float64(other))) }
{{- end}}

// Less reports whether {{$r}} < other.
func ({{$r}} {{$t}}) Less(other {{$t}}) bool { return {{$r}} < other }

// Zero returns the additive identity.
func ({{$t}}) Zero() {{$t}} { return 0 }

// Min returns the smallest representable {{$t}}.
func ({{$t}}) Min() {{$t}} { return {{.Min}} }

// Max returns the largest representable {{$t}}.
func ({{$t}}) Max() {{$t}} { return {{.Max}} }

// Scale returns the host transform units per {{$t}} unit.
func ({{$t}}) Scale() float32 { return {{.Scale}} }
{{if not .Custom}}
// Float32 returns {{$r}} in the float32 interchange format.
func ({{$r}} {{$t}}) Float32() float32 { return float32({{$r}}) }
{{if .Integer}}
// FromFloat32 rounds f to the nearest {{$t}}, failing outside [Min, Max].
func ({{$t}}) FromFloat32(f float32) ({{$t}}, error) {
	r := math.Round(float64(f))
	if math.IsNaN(r) || r < float64({{.Min}}) || r > float64({{.Max}}) {
		return 0, &{{.Qual}}ConversionError{Value: f, Min: float32({{.Min}}), Max: float32({{.Max}})}
	}
	return {{$t}}(r), nil
}
{{- else}}
// FromFloat32 converts f into a {{$t}}.
func ({{$t}}) FromFloat32(f float32) ({{$t}}, error) { return {{$t}}(f), nil }
{{- end}}
{{end}}`))

func main() {
	var wrapper Wrapper
	var out string
	flag.StringVar(&wrapper.Type, "type", "", "wrapper type name")
	flag.StringVar(&wrapper.Base, "base", "", "underlying numeric type (int32, float32, float64, ...)")
	flag.StringVar(&wrapper.Min, "min", "", "Go expression for the minimum value")
	flag.StringVar(&wrapper.Max, "max", "", "Go expression for the maximum value")
	flag.StringVar(&wrapper.Scale, "scale", "1", "host transform units per coordinate unit")
	flag.BoolVar(&wrapper.Custom, "custom", false, "do not generate Float32 and FromFloat32")
	flag.StringVar(&wrapper.Package, "package", os.Getenv("GOPACKAGE"), "package name of the generated file")
	flag.StringVar(&out, "out", "", "output file (default <type>_generated.go)")
	flag.Parse()

	logger := zap.NewExample()
	defer logger.Sync()

	if err := run(wrapper, out); err != nil {
		logger.Fatal("coordgen failed", zap.String("type", wrapper.Type), zap.Error(err))
	}
}

func run(wrapper Wrapper, out string) error {
	if wrapper.Type == "" || wrapper.Base == "" || wrapper.Min == "" || wrapper.Max == "" || wrapper.Package == "" {
		return fmt.Errorf("-type, -base, -min, -max and -package are required")
	}
	if out == "" {
		out = strings.ToLower(wrapper.Type) + "_generated.go"
	}
	src, err := Generate(wrapper)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// Generate renders and gofmts the source for wrapper.
func Generate(wrapper Wrapper) ([]byte, error) {
	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, wrapper); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}
