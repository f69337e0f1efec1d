package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// NewSymTriDiagonal builds a symmetric tridiagonal matrix from the main
// diagonal d0 and the first off-diagonal d1, len(d1) = len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	var (
		n = len(d0)
	)
	if len(d1) != n-1 {
		err := fmt.Errorf("mismatch in allocation: NewSymTriDiagonal len(d0) = %v, len(d1) = %v\n",
			len(d0), len(d1))
		panic(err)
	}
	J = mat.NewSymDense(n, nil)
	for i, val := range d0 {
		J.SetSym(i, i, val)
	}
	for i, val := range d1 {
		J.SetSym(i, i+1, val)
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

// Chainable methods (extended)
func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m *Matrix) SetWritable() Matrix {
	m.readOnly = false
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Subtract(a Matrix) Matrix { // Changes receiver
	var (
		data  = m.M.RawMatrix().Data
		dataA = a.M.RawMatrix().Data
	)
	m.checkWritable()
	for i := range data {
		data[i] -= dataA[i]
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	m.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) POW(p int) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return m
}

// Non chainable methods
func (m Matrix) Col(j int) Vector {
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.M.Dims()
		vData  = make([]float64, nr)
	)
	for i := range vData {
		vData[i] = data[i*nc+j]
	}
	return NewVector(nr, vData)
}

func (m Matrix) Row(i int) Vector {
	var (
		data  = m.M.RawMatrix().Data
		_, nc = m.M.Dims()
		vData = make([]float64, nc)
	)
	for j := range vData {
		vData[j] = data[j+i*nc]
	}
	return NewVector(nc, vData)
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
