package gobackprop

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoBackprop/internal/activations"
	"github.com/FlavioCFOliveira/GoBackprop/internal/loss"
	"github.com/FlavioCFOliveira/GoBackprop/internal/net"
	"github.com/FlavioCFOliveira/GoBackprop/internal/opt"
)

// Re-export common types and functions for easier access
type (
	Trainer     = net.Trainer
	Params      = net.Params
	Grads       = net.Grads
	Activations = net.Activations
	Report      = net.Report
	Activation  = activations.Activation
	Loss        = loss.Loss
	Optimizer   = opt.Optimizer
	Dense       = mat.Dense
)

// Fixed topology of the demo network.
const (
	Inputs  = net.Inputs
	Hidden  = net.Hidden
	Outputs = net.Outputs
)

// Activations
var (
	ReLU    = activations.ReLU{}
	Linear  = activations.Linear{}
	Tanh    = activations.Tanh{}
	Sigmoid = activations.Sigmoid{}
)

// Losses
var (
	SquaredError = loss.SquaredError{}
	MSE          = loss.MSE{}
)

// SGD creates a gradient-descent optimizer with the given learning rate.
func SGD(eta float64) Optimizer {
	return opt.SGD{LearningRate: eta}
}

// NewTrainer creates a trainer with an explicit activation, loss, and optimizer.
func NewTrainer(act Activation, l Loss, o Optimizer) *Trainer {
	return net.New(act, l, o)
}

// SingleStep creates the canonical demo trainer: ReLU hidden layer,
// squared-error loss, plain gradient descent.
func SingleStep(eta float64) *Trainer {
	return net.New(activations.ReLU{}, loss.SquaredError{}, opt.SGD{LearningRate: eta})
}

// Parameter construction
func NewParams(w1, w2 *Dense) (*Params, error) { return net.NewParams(w1, w2) }

// RandomParams draws integer-valued parameters uniformly from [0, 10).
func RandomParams(rng *rand.Rand) *Params { return net.RandomParams(rng) }

// RandomExample draws an integer-valued input and target from [0, 10).
func RandomExample(rng *rand.Rand) ([]float64, float64) { return net.RandomExample(rng) }
