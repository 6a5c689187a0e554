// Package loss provides loss functions.
package loss

// BackwardInPlacer is an optional interface for loss functions that support
// in-place gradient computation to avoid allocations.
type BackwardInPlacer interface {
	BackwardInPlace(yPred, yTrue, grad []float64)
}

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// Backward computes the gradient of the loss w.r.t. prediction.
	Backward(yPred, yTrue []float64) []float64
}

// SquaredError is the unaveraged squared error: sum((y_pred - y_true)^2).
// For a single scalar output this is exactly (a2 - y)^2.
type SquaredError struct{}

// Forward computes sum((y_pred - y_true)^2).
func (s SquaredError) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("SquaredError: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		sum += diff * diff
	}
	return sum
}

// Backward computes gradient: dL/dy_pred = 2 * (y_pred - y_true).
// Note: Returned slice is newly allocated for safety.
func (s SquaredError) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("SquaredError: prediction and target must have same length")
	}

	grad := make([]float64, n)
	for i := 0; i < n; i++ {
		grad[i] = 2 * (yPred[i] - yTrue[i])
	}
	return grad
}

// BackwardInPlace computes gradient and stores it in the grad slice.
func (s SquaredError) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("SquaredError: slices must have same length")
	}

	for i := 0; i < n; i++ {
		grad[i] = 2 * (yPred[i] - yTrue[i])
	}
}

// MSE (Mean Squared Error) loss, the averaged variant.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (m MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		sum += diff * diff
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dy_pred = (2/n) * (y_pred - y_true)
func (m MSE) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	grad := make([]float64, n)
	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
	return grad
}

// BackwardInPlace computes gradient and stores it in the grad slice.
func (m MSE) BackwardInPlace(yPred, yTrue, grad []float64) {
	n := len(yPred)
	if n != len(yTrue) || n != len(grad) {
		panic("MSE: slices must have same length")
	}

	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
}
