package utils

import (
	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK wraps a dictionary-of-keys sparse matrix, used to accumulate the
// structural (topology-driven) entries of the global system before the
// dense factorization.
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		M: sparse.NewDOK(nr, nc),
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) NNZ() int { return m.M.NNZ() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m DOK) AddAt(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, m.M.At(i, j)+val)
	return m
}

func (m DOK) ZeroRow(i int) DOK { // Changes receiver
	var (
		_, nc = m.Dims()
	)
	for j := 0; j < nc; j++ {
		if m.M.At(i, j) != 0. {
			m.M.Set(i, j, 0.)
		}
	}
	return m
}

// ToMatrix densifies the accumulated entries for the LU solve.
func (m DOK) ToMatrix() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	d := m.M.ToDense()
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			R.DataP[i*nc+j] = d.At(i, j)
		}
	}
	return
}
