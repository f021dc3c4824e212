package main

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseGenerated(t *testing.T, wrapper Wrapper) string {
	t.Helper()
	src, err := Generate(wrapper)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err, "generated source:\n%s", src)
	return string(src)
}

func TestGenerateInteger(t *testing.T) {
	src := parseGenerated(t, Wrapper{
		Package: "grid", Type: "Orthogonal", Base: "int32",
		Min: "-1 << 24", Max: "1 << 24", Scale: "1",
	})

	assert.Contains(t, src, "// Code generated by coordgen. DO NOT EDIT.")
	assert.Contains(t, src, `"github.com/pthm-cable/planar/coord"`)
	assert.Contains(t, src, "func (o Orthogonal) Rem(other Orthogonal) Orthogonal { return o % other }")
	assert.Contains(t, src, "&coord.ConversionError{")
	assert.Contains(t, src, "math.Round")
}

func TestGenerateFloatInCoordPackage(t *testing.T) {
	src := parseGenerated(t, Wrapper{
		Package: "coord", Type: "F32", Base: "float32",
		Min: "-math.MaxFloat32", Max: "math.MaxFloat32", Scale: "1",
	})

	assert.NotContains(t, src, "planar/coord")
	assert.Contains(t, src, "math.Mod(float64(f), float64(other))")
	assert.Contains(t, src, "func (F32) FromFloat32(f float32) (F32, error) { return F32(f), nil }")
}

func TestGenerateCustomConversion(t *testing.T) {
	src := parseGenerated(t, Wrapper{
		Package: "units", Type: "Meters", Base: "int64",
		Min: "-1000", Max: "1000", Scale: "0.01", Custom: true,
	})

	assert.NotContains(t, src, "FromFloat32")
	assert.NotContains(t, src, "import")
	assert.Contains(t, src, "func (Meters) Scale() float32 { return 0.01 }")
}

func TestRunRequiresFlags(t *testing.T) {
	err := run(Wrapper{Type: "X"}, "")
	assert.Error(t, err)
}
