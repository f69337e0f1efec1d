package InputParameters

import (
	"testing"

	"github.com/magiconair/properties/assert"

	"github.com/opueyociutad/goquad/types"
)

func TestParseTableParameters(t *testing.T) {
	var (
		err error
	)
	fileInput := []byte(`
Title: Reference Rules
Precision: double
Format: csv
OutputDir: rules
Rules:
  - Family: legendre # Can be legendre, lobatto, simpson or simpson38
    N: 16
  - Family: lobatto
    N: 8
  - Family: simpson38
    N: 7
`)
	var input TableParameters
	if err = input.Parse(fileInput); err != nil {
		panic(err)
	}
	assert.Equal(t, input.Title, "Reference Rules")
	assert.Equal(t, input.OutputDir, "rules")
	assert.Equal(t, len(input.Rules), 3)
	assert.Equal(t, input.Rules[1].Family, "lobatto")
	assert.Equal(t, input.Rules[1].N, 8)
	rt, err := input.Rules[2].RuleType()
	assert.Equal(t, err, nil)
	assert.Equal(t, rt, types.CompositeSimpson38)
	input.Print()
}

func TestParseDefaults(t *testing.T) {
	var input TableParameters
	err := input.Parse([]byte(`
Title: Minimal
Rules:
  - Family: gauss
    N: 3
`))
	assert.Equal(t, err, nil)
	assert.Equal(t, input.Precision, "double")
	assert.Equal(t, input.Format, "csv")
	assert.Equal(t, input.OutputDir, ".")
}

func TestParseRejectsBadTables(t *testing.T) {
	cases := [][]byte{
		[]byte("Title: No Rules\n"),
		[]byte("Rules:\n  - Family: chebyshev\n    N: 8\n"),
		[]byte("Rules:\n  - Family: lobatto\n    N: 1\n"),
		[]byte("Format: xml\nRules:\n  - Family: gauss\n    N: 3\n"),
		[]byte("Precision: half\nRules:\n  - Family: gauss\n    N: 3\n"),
	}
	for i, data := range cases {
		var input TableParameters
		if err := input.Parse(data); err == nil {
			t.Errorf("case %d should have been rejected", i)
		}
	}
}
