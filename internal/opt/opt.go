// Package opt provides optimization algorithms.
package opt

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Optimizer updates parameters based on gradients.
type Optimizer interface {
	// Step computes updated parameters: params - lr * gradients
	// Returns a new slice with updated values
	Step(params, gradients []float64) []float64

	// StepInPlace updates params in-place: params = params - lr * gradients
	StepInPlace(params, gradients []float64)

	// StepDense applies the update in place to a parameter matrix.
	StepDense(params, gradients *mat.Dense)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// Step computes updated parameters: params - lr * gradients
func (s SGD) Step(params, gradients []float64) []float64 {
	result := make([]float64, len(params))
	copy(result, params)
	floats.AddScaled(result, -s.LearningRate, gradients)
	return result
}

// StepInPlace updates params in-place: params = params - lr * gradients
func (s SGD) StepInPlace(params, gradients []float64) {
	floats.AddScaled(params, -s.LearningRate, gradients)
}

// StepDense updates a parameter matrix in place: W = W - lr * G.
// Panics if the gradient shape does not match the parameter shape.
func (s SGD) StepDense(params, gradients *mat.Dense) {
	pr, pc := params.Dims()
	gr, gc := gradients.Dims()
	if pr != gr || pc != gc {
		panic("SGD: gradient shape must match parameter shape")
	}

	p := params.RawMatrix()
	g := gradients.RawMatrix()
	for i := 0; i < pr; i++ {
		floats.AddScaled(p.Data[i*p.Stride:i*p.Stride+pc], -s.LearningRate,
			g.Data[i*g.Stride:i*g.Stride+pc])
	}
}
