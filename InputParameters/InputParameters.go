package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/opueyociutad/goquad/types"
)

// Parameters obtained from the YAML input file
type TableParameters struct {
	Title     string           `yaml:"Title"`
	Precision string           `yaml:"Precision"`
	Format    string           `yaml:"Format"`
	OutputDir string           `yaml:"OutputDir"`
	Rules     []RuleParameters `yaml:"Rules"`
}

type RuleParameters struct {
	Family string `yaml:"Family"`
	N      int    `yaml:"N"`
}

func (tp *TableParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, tp); err != nil {
		return err
	}
	if tp.Precision == "" {
		tp.Precision = "double"
	}
	if tp.Format == "" {
		tp.Format = "csv"
	}
	if tp.OutputDir == "" {
		tp.OutputDir = "."
	}
	return tp.Validate()
}

// Validate resolves every label in the file so a bad table is rejected
// before any rule is generated.
func (tp *TableParameters) Validate() error {
	if _, err := types.ParsePrecision(tp.Precision); err != nil {
		return err
	}
	if tp.Format != "csv" && tp.Format != "yaml" {
		return fmt.Errorf("unknown output format %q, valid formats are: csv, yaml", tp.Format)
	}
	if len(tp.Rules) == 0 {
		return fmt.Errorf("input file defines no rules")
	}
	for _, rp := range tp.Rules {
		rt, err := rp.RuleType()
		if err != nil {
			return err
		}
		if rp.N < rt.MinPoints() {
			return fmt.Errorf("%s requires at least %d points, have %d", rt, rt.MinPoints(), rp.N)
		}
	}
	return nil
}

func (rp RuleParameters) RuleType() (types.RuleType, error) {
	return types.ParseRuleType(rp.Family)
}

func (tp *TableParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", tp.Title)
	fmt.Printf("[%s]\t\t\t= Precision\n", tp.Precision)
	fmt.Printf("[%s]\t\t\t= Format\n", tp.Format)
	fmt.Printf("[%s]\t\t\t= OutputDir\n", tp.OutputDir)
	for _, rp := range tp.Rules {
		fmt.Printf("Rule[%s] N = %d\n", rp.Family, rp.N)
	}
}
