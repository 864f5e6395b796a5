package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.DataP)
	}
	// Mul
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		A := NewMatrix(2, 2, []float64{
			0, 1,
			1, 0,
		})
		assert.Equal(t, []float64{2, 1, 4, 3}, M.Mul(A).DataP)
	}
	// Inverse
	{
		M := NewMatrix(2, 2, []float64{
			2, 0,
			0, 4,
		})
		MInv, err := M.Inverse()
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.25}, MInv.DataP, 0.000001)

		S := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, err = S.Inverse()
		assert.Error(t, err)
	}
	// LUSolve
	{
		M := NewMatrix(2, 2, []float64{
			2, 1,
			1, 3,
		})
		b := NewVector(2, []float64{5, 10})
		x, err := M.LUSolve(b)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 3}, x.DataP, 0.000001)

		S := NewMatrix(2, 2, []float64{
			1, 2,
			2, 4,
		})
		_, err = S.LUSolve(b)
		assert.Error(t, err)
	}
	// ZeroRow / SetRow
	{
		M := NewMatrix(2, 2, []float64{
			1, 2,
			3, 4,
		})
		M.ZeroRow(0)
		assert.Equal(t, []float64{0, 0, 3, 4}, M.DataP)
	}
}

func TestVector(t *testing.T) {
	{
		v := NewVectorConst(3, 2.5)
		assert.Equal(t, []float64{2.5, 2.5, 2.5}, v.DataP)
		assert.Equal(t, 2.5, v.Max())
		assert.Equal(t, 2.5, v.Min())
	}
	{
		v := NewVector(3, []float64{1, -2, 3})
		a := NewVector(3, []float64{1, 2, 2})
		assert.Equal(t, 4., v.MaxAbsDiff(a))
		assert.InDelta(t, 3.7416573867739413, v.Norm(), 0.000001)
	}
}

func TestDOK(t *testing.T) {
	// Accumulation and densification
	{
		d := NewDOK(3, 3)
		d.AddAt(0, 0, 1.)
		d.AddAt(0, 0, 1.5)
		d.Set(1, 2, 3.)
		M := d.ToMatrix()
		assert.InDelta(t, 2.5, M.At(0, 0), 0.000001)
		assert.InDelta(t, 3., M.At(1, 2), 0.000001)
		assert.Equal(t, 2, d.NNZ())
	}
	// ZeroRow clears structural entries
	{
		d := NewDOK(2, 2)
		d.Set(0, 0, 1.)
		d.Set(0, 1, 2.)
		d.Set(1, 1, 4.)
		d.ZeroRow(0)
		M := d.ToMatrix()
		assert.Equal(t, 0., M.At(0, 0))
		assert.Equal(t, 0., M.At(0, 1))
		assert.Equal(t, 4., M.At(1, 1))
	}
}
