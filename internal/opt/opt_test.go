// Package opt provides unit tests for optimizers.
package opt

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TestSGDStep tests the basic update rule.
func TestSGDStep(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	params := []float64{1.0, 2.0, 3.0}
	gradients := []float64{1.0, -1.0, 0.5}

	updated := sgd.Step(params, gradients)
	want := []float64{0.9, 2.1, 2.95}

	for i := range want {
		if math.Abs(updated[i]-want[i]) > 1e-12 {
			t.Errorf("Step[%d] = %v, want %v", i, updated[i], want[i])
		}
	}

	// Original params must be untouched.
	if params[0] != 1.0 || params[1] != 2.0 || params[2] != 3.0 {
		t.Errorf("Step mutated the input params: %v", params)
	}
}

// TestSGDStepInPlace tests the in-place update.
func TestSGDStepInPlace(t *testing.T) {
	sgd := SGD{LearningRate: 0.5}

	params := []float64{1.0, 0.0}
	sgd.StepInPlace(params, []float64{2.0, -2.0})

	want := []float64{0.0, 1.0}
	for i := range want {
		if math.Abs(params[i]-want[i]) > 1e-12 {
			t.Errorf("StepInPlace[%d] = %v, want %v", i, params[i], want[i])
		}
	}
}

// TestSGDStepDense tests the matrix update.
func TestSGDStepDense(t *testing.T) {
	sgd := SGD{LearningRate: 0.01}

	w := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	g := mat.NewDense(2, 2, []float64{100, 0, -100, 50})

	sgd.StepDense(w, g)

	want := mat.NewDense(2, 2, []float64{0, 2, 4, 3.5})
	if !mat.EqualApprox(w, want, 1e-12) {
		t.Errorf("StepDense =\n%v\nwant\n%v", mat.Formatted(w), mat.Formatted(want))
	}
}

// TestSGDStepDenseShapeMismatch tests the precondition panic.
func TestSGDStepDenseShapeMismatch(t *testing.T) {
	sgd := SGD{LearningRate: 0.01}

	defer func() {
		if r := recover(); r == nil {
			t.Error("StepDense with mismatched shapes should panic")
		}
	}()
	sgd.StepDense(mat.NewDense(2, 2, nil), mat.NewDense(2, 3, nil))
}

// TestSGDEtaScaling tests that doubling the learning rate doubles the
// parameter displacement.
func TestSGDEtaScaling(t *testing.T) {
	params := []float64{1.0, -2.0, 0.5, 3.0}
	gradients := []float64{0.3, 1.2, -0.7, 0.1}

	small := SGD{LearningRate: 0.01}.Step(params, gradients)
	large := SGD{LearningRate: 0.02}.Step(params, gradients)

	dSmall := make([]float64, len(params))
	dLarge := make([]float64, len(params))
	floats.SubTo(dSmall, small, params)
	floats.SubTo(dLarge, large, params)

	ratio := floats.Norm(dLarge, 2) / floats.Norm(dSmall, 2)
	if math.Abs(ratio-2.0) > 1e-9 {
		t.Errorf("displacement ratio = %v, want 2", ratio)
	}
}
