package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewDiagDOK builds a square sparse matrix carrying d on the main diagonal.
func NewDiagDOK(d []float64) (R DOK) {
	var (
		n = len(d)
	)
	R = NewDOK(n, n)
	for i, val := range d {
		R.M.Set(i, i, val)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)              { return m.M.Dims() }
func (m DOK) At(i, j int) float64           { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix                 { return m.M.T() }
func (m DOK) RawMatrix() *blas.SparseMatrix { return m.ToCSR().RawMatrix() }

func (m *DOK) SetReadOnly(name ...string) DOK {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }
