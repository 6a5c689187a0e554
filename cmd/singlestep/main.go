package main

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/FlavioCFOliveira/GoBackprop/internal/activations"
	"github.com/FlavioCFOliveira/GoBackprop/internal/loss"
	"github.com/FlavioCFOliveira/GoBackprop/internal/net"
	"github.com/FlavioCFOliveira/GoBackprop/internal/opt"
)

// Single-step backpropagation example
// Initializes a fixed 2-3-1 network on one random example, then runs
// exactly one forward pass, backward pass, and gradient-descent update,
// and reports the change in loss.
func main() {
	fmt.Println("=== Single-Step Backprop Example ===")

	rng := rand.New(rand.NewSource(42))

	fmt.Printf("Network architecture: %d-%d-%d\n", net.Inputs, net.Hidden, net.Outputs)
	fmt.Println("Activation functions: ReLU (hidden), Linear (output)")
	fmt.Println("Loss function: squared error")

	// The integer-valued init produces large activations, so the step
	// has to stay small for a single update to make progress.
	const eta = 1e-7
	fmt.Printf("Optimizer: SGD with learning rate %g\n", eta)

	params := net.RandomParams(rng)
	x, y := net.RandomExample(rng)

	fmt.Printf("\nTraining example: x = %v, y = %v\n", x, y)
	fmt.Printf("\nInitial w1:\n%v\n", mat.Formatted(params.W1, mat.Squeeze()))
	fmt.Printf("\nInitial w2:\n%v\n", mat.Formatted(params.W2, mat.Squeeze()))

	trainer := net.New(
		activations.ReLU{},
		loss.SquaredError{},
		opt.SGD{LearningRate: eta},
	)

	report, err := trainer.TrainStep(params, x, y)
	if err != nil {
		fmt.Printf("Error running training step: %v\n", err)
		return
	}

	fmt.Printf("\nFirst loss: %.6f\n", report.FirstLoss)
	fmt.Printf("\nGradient w.r.t. w2:\n%v\n", mat.Formatted(report.Grads.W2, mat.Squeeze()))
	fmt.Printf("\nGradient w.r.t. w1:\n%v\n", mat.Formatted(report.Grads.W1, mat.Squeeze()))
	fmt.Printf("\nSecond loss: %.6f\n", report.SecondLoss)
	fmt.Printf("Improvement: %.6f\n", report.Improvement)
}
