// Package net implements a single-step trainer for a fixed 2-3-1
// feed-forward network with bias-augmented linear layers.
//
// Parameters travel through every stage as an explicit Params bundle:
// initialization, forward evaluation, loss, analytic backward pass, and
// one gradient-descent update. Each stage is a primitive, so a caller
// is free to loop them.
package net

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoBackprop/internal/activations"
	"github.com/FlavioCFOliveira/GoBackprop/internal/linalg"
	"github.com/FlavioCFOliveira/GoBackprop/internal/loss"
	"github.com/FlavioCFOliveira/GoBackprop/internal/opt"
)

// Fixed network topology. The mathematics below assumes these shapes
// exactly; anything else is rejected at construction.
const (
	Inputs  = 2
	Hidden  = 3
	Outputs = 1
)

// initRange bounds the integer-valued uniform draws used by the random
// initializers.
const initRange = 10

// Params bundles the two mutable parameter matrices.
//
// W1 is Hidden x (Inputs+1): columns 1..Inputs are weights, the last
// column is the bias of each hidden unit. W2 is Outputs x (Hidden+1):
// the first Hidden entries weight the hidden units, the last is the
// output bias.
type Params struct {
	W1 *mat.Dense
	W2 *mat.Dense
}

// NewParams validates the shapes and wraps the two matrices.
func NewParams(w1, w2 *mat.Dense) (*Params, error) {
	r, c := w1.Dims()
	if r != Hidden || c != Inputs+1 {
		return nil, fmt.Errorf("net: w1 is %dx%d, want %dx%d", r, c, Hidden, Inputs+1)
	}
	r, c = w2.Dims()
	if r != Outputs || c != Hidden+1 {
		return nil, fmt.Errorf("net: w2 is %dx%d, want %dx%d", r, c, Outputs, Hidden+1)
	}
	return &Params{W1: w1, W2: w2}, nil
}

// RandomParams draws integer-valued parameters uniformly from [0, 10).
func RandomParams(rng *rand.Rand) *Params {
	w1 := mat.NewDense(Hidden, Inputs+1, nil)
	for i := 0; i < Hidden; i++ {
		for j := 0; j < Inputs+1; j++ {
			w1.Set(i, j, float64(rng.Intn(initRange)))
		}
	}
	w2 := mat.NewDense(Outputs, Hidden+1, nil)
	for j := 0; j < Hidden+1; j++ {
		w2.Set(0, j, float64(rng.Intn(initRange)))
	}
	p, _ := NewParams(w1, w2)
	return p
}

// RandomExample draws an integer-valued input vector and target from [0, 10).
func RandomExample(rng *rand.Rand) (x []float64, y float64) {
	x = make([]float64, Inputs)
	for i := range x {
		x[i] = float64(rng.Intn(initRange))
	}
	return x, float64(rng.Intn(initRange))
}

// Clone returns a deep copy of the parameter bundle.
func (p *Params) Clone() *Params {
	return &Params{
		W1: mat.DenseCopyOf(p.W1),
		W2: mat.DenseCopyOf(p.W2),
	}
}

// Activations caches every stage of one forward pass.
type Activations struct {
	A0 *mat.VecDense // input with bias coordinate appended, length Inputs+1
	Z1 *mat.VecDense // hidden pre-activation W1*a0, length Hidden
	A1 *mat.VecDense // activated hidden with bias appended, length Hidden+1
	A2 float64       // network output W2*a1
}

// Grads holds the loss gradients, shaped to match Params.
type Grads struct {
	W1 *mat.Dense
	W2 *mat.Dense
}

// Trainer evaluates and updates a Params bundle for one example at a time.
type Trainer struct {
	act  activations.Activation
	loss loss.Loss
	opt  opt.Optimizer
}

// New creates a trainer with the given hidden activation, loss, and optimizer.
func New(act activations.Activation, l loss.Loss, optimizer opt.Optimizer) *Trainer {
	return &Trainer{
		act:  act,
		loss: l,
		opt:  optimizer,
	}
}

// Forward evaluates the network on x with the current parameters.
// It is pure: same parameters and input give bit-identical results,
// and nothing is mutated.
func (t *Trainer) Forward(p *Params, x []float64) (*Activations, error) {
	if len(x) != Inputs {
		return nil, fmt.Errorf("net: input has length %d, want %d", len(x), Inputs)
	}

	a0 := linalg.Augment(mat.NewVecDense(Inputs, x))

	var z1 mat.VecDense
	z1.MulVec(p.W1, a0)

	// The bias coordinate is appended after the nonlinearity, never before.
	a1 := linalg.Augment(linalg.Apply(t.act, &z1))

	var out mat.VecDense
	out.MulVec(p.W2, a1)

	return &Activations{A0: a0, Z1: &z1, A1: a1, A2: out.AtVec(0)}, nil
}

// Loss computes the loss of a forward pass against the target y.
func (t *Trainer) Loss(acts *Activations, y float64) float64 {
	return t.loss.Forward([]float64{acts.A2}, []float64{y})
}

// Backward computes the exact analytic gradients of the loss with
// respect to every entry of W1 and W2, by explicit chain rule over the
// cached forward stages.
//
// The output layer is a linear map evaluated at the fixed input a1, so
// its derivative with respect to its own coefficients is a1 itself:
// gradW2 = dA2 * a1ᵀ. For the hidden layer the chain runs through the
// output weights (dJ/da1 = dA2 * w2), the Jacobian of the augmented
// activation at z1 (diagonal derivative block over a zero bias row),
// and the Kronecker-product Jacobian I ⊗ a0ᵀ of the first linear map
// with respect to its own coefficients. The resulting 1x9 row reshapes
// row-major onto W1.
func (t *Trainer) Backward(p *Params, acts *Activations, y float64) *Grads {
	dA2 := t.loss.Backward([]float64{acts.A2}, []float64{y})[0]

	var gradW2 mat.Dense
	gradW2.Scale(dA2, acts.A1.T())

	var dA1 mat.Dense
	dA1.Scale(dA2, p.W2)

	var dZ1 mat.Dense
	dZ1.Mul(&dA1, linalg.ActivationJacobian(t.act, acts.Z1))

	var flat mat.Dense
	flat.Mul(&dZ1, linalg.CoefficientJacobian(Hidden, acts.A0))

	return &Grads{
		W1: linalg.Reshape(&flat, Hidden, Inputs+1),
		W2: &gradW2,
	}
}

// Step applies one optimizer update to both parameter matrices in place.
func (t *Trainer) Step(p *Params, g *Grads) {
	t.opt.StepDense(p.W1, g.W1)
	t.opt.StepDense(p.W2, g.W2)
}

// Report describes one full training step.
//
// Improvement is FirstLoss - SecondLoss. Its sign is observational: a
// single step with a fixed learning rate can increase the loss when the
// rate or the gradients are large.
type Report struct {
	FirstLoss   float64
	SecondLoss  float64
	Improvement float64
	Grads       *Grads
}

// TrainStep runs forward, loss, backward, update, then a second forward
// and loss on the updated parameters, and reports the observed change.
func (t *Trainer) TrainStep(p *Params, x []float64, y float64) (*Report, error) {
	acts, err := t.Forward(p, x)
	if err != nil {
		return nil, err
	}
	first := t.Loss(acts, y)

	grads := t.Backward(p, acts, y)
	t.Step(p, grads)

	after, err := t.Forward(p, x)
	if err != nil {
		return nil, err
	}
	second := t.Loss(after, y)

	return &Report{
		FirstLoss:   first,
		SecondLoss:  second,
		Improvement: first - second,
		Grads:       grads,
	}, nil
}
