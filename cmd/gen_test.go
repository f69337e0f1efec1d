package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/magiconair/properties/assert"

	"github.com/opueyociutad/goquad/quad"
	"github.com/opueyociutad/goquad/types"
)

func TestGenerateDispatch(t *testing.T) {
	var (
		err error
	)
	r, err := generate[float64](types.GaussLobatto, 3)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, r.Nodes, []float64{-1, 0, 1})

	want, err := quad.CompositeSimpson38[float64](4)
	if err != nil {
		panic(err)
	}
	got, err := generate[float64](types.CompositeSimpson38, 4)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, got.Nodes, want.Nodes)
	assert.Equal(t, got.Weights, want.Weights)

	// Unknown family values fall through to Gauss-Legendre.
	gl, err := quad.GaussLegendre[float64](5)
	if err != nil {
		panic(err)
	}
	got, err = generate[float64](types.GaussLegendre, 5)
	if err != nil {
		panic(err)
	}
	assert.Equal(t, got.Nodes, gl.Nodes)
}

func TestWriteRuleCSV(t *testing.T) {
	var (
		err error
		buf bytes.Buffer
	)
	r, err := generate[float64](types.GaussLobatto, 3)
	if err != nil {
		panic(err)
	}
	if err = writeRule(&buf, "csv", types.GaussLobatto, types.Double, r); err != nil {
		panic(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 4)
	assert.Equal(t, lines[0], "i,node,weight")
	assert.Equal(t, lines[1], "0,-1,0.3333333333333333")
	assert.Equal(t, lines[2], "1,0,1.3333333333333333")
	assert.Equal(t, lines[3], "2,1,0.3333333333333333")
}

func TestWriteRuleYAML(t *testing.T) {
	var (
		err error
		buf bytes.Buffer
	)
	r, err := generate[float32](types.CompositeSimpson, 5)
	if err != nil {
		panic(err)
	}
	if err = writeRule(&buf, "yaml", types.CompositeSimpson, types.Single, r); err != nil {
		panic(err)
	}
	out := RuleOutput[float32]{}
	if err = yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		panic(err)
	}
	assert.Equal(t, out.Family, "CompositeSimpson")
	assert.Equal(t, out.N, 5)
	assert.Equal(t, out.Precision, "Single")
	assert.Equal(t, out.Nodes, r.Nodes)
	assert.Equal(t, out.Weights, r.Weights)
}

func TestWriteRuleTable(t *testing.T) {
	var (
		err error
		buf bytes.Buffer
	)
	r, err := generate[float64](types.GaussLegendre, 4)
	if err != nil {
		panic(err)
	}
	if err = writeRule(&buf, "table", types.GaussLegendre, types.Double, r); err != nil {
		panic(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, len(lines), 6)
	if !strings.Contains(lines[0], "GaussLegendre, 4 points, exact through degree 7") {
		t.Errorf("unexpected table header: %q", lines[0])
	}

	buf.Reset()
	err = writeRule(&buf, "binary", types.GaussLegendre, types.Double, r)
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Errorf("expected unknown format error, got %v", err)
	}
}
