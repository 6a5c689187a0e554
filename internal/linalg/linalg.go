// Package linalg provides the small pieces of matrix calculus the trainer
// is built from: bias augmentation, Jacobians of the augmented activation
// map, and the Kronecker-product Jacobian of a linear map with respect to
// its own coefficients.
package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoBackprop/internal/activations"
)

// Augment appends the constant bias coordinate 1 to x.
// The last entry of the result is always exactly 1.
func Augment(x mat.Vector) *mat.VecDense {
	n := x.Len()
	v := mat.NewVecDense(n+1, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, x.AtVec(i))
	}
	v.SetVec(n, 1)
	return v
}

// Apply maps act elementwise over z.
func Apply(act activations.Activation, z mat.Vector) *mat.VecDense {
	n := z.Len()
	v := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, act.Activate(z.AtVec(i)))
	}
	return v
}

// ActivationJacobian builds the (n+1) x n Jacobian at z of the map
// z -> [act(z); 1]. The top n x n block is diagonal with entries
// act.Derivative(z_i); the final row is zero because the appended bias
// coordinate is constant.
func ActivationJacobian(act activations.Activation, z mat.Vector) *mat.Dense {
	n := z.Len()
	jac := mat.NewDense(n+1, n, nil)
	for i := 0; i < n; i++ {
		jac.Set(i, i, act.Derivative(z.AtVec(i)))
	}
	return jac
}

// CoefficientJacobian builds the rows x (rows*in.Len()) Jacobian of the
// evaluation map W -> W*in with respect to the entries of W, taken in
// row-major order. It is the Kronecker product I ⊗ inᵀ: each output row
// depends only on its own coefficient row, each partial equal to the
// corresponding entry of in.
func CoefficientJacobian(rows int, in mat.Vector) *mat.Dense {
	eye := mat.NewDiagDense(rows, nil)
	for i := 0; i < rows; i++ {
		eye.SetDiag(i, 1)
	}
	var jac mat.Dense
	jac.Kronecker(eye, in.T())
	return &jac
}

// Reshape packs a 1 x (r*c) row matrix into an r x c matrix in row-major
// order. This must match the row-major backing layout of mat.Dense, or
// reshaped gradients would silently permute.
func Reshape(row mat.Matrix, r, c int) *mat.Dense {
	rr, rc := row.Dims()
	if rr != 1 || rc != r*c {
		panic("linalg: Reshape requires a 1 x (r*c) row")
	}
	data := make([]float64, r*c)
	for j := 0; j < r*c; j++ {
		data[j] = row.At(0, j)
	}
	return mat.NewDense(r, c, data)
}
