// Package recurrent provides a small recurrent neural network, trained with backpropagation
// through time, one sequence at a time.
//
// Creating Networks
//
// A Network is a recurrent Layer followed by an OutputLayer. For brevity, recurrent is
// abbreviated 'rc':
//
//		weights := initializers.Random(initializers.Uniform().Bounds(0, 0.1)).Weights()
//		zero := initializers.Constant(0).Biases()
//
//		layer := rc.NewLayer(outputSize, inputSize, stateSize,
//			rc.SublayerArgs{Weights: weights, Biases: zero, Activation: activations.Tanh()},
//			rc.SublayerArgs{Weights: weights, Biases: zero, Activation: activations.Identity()},
//		)
//		out := rc.NewOutputLayer(outputSize, outputSize, weights, zero, activations.Identity(), costfuncs.MSE())
//
//		net, err := rc.NewNetwork(layer, out)
//		if err != nil {
//			return err
//		}
//
// The Layer holds a state vector that is carried from one step of a sequence to the next. At
// each step, two DenseLayers read the previous state and the new inputs: the RecurrentTree
// produces the next state, and the OutputTree produces the values passed on to the OutputLayer.
//
// Activations, CostFunctions, initializers and HyperParameters are found in the subpackages
// "activations", "costfuncs", "initializers" and "hyperparams". Activations, CostFunctions and
// HyperParameters register themselves by name when imported, so that they can also be found with
// GetActivation and friends.
//
// Training and Testing
//
// A single sequence is trained with:
//
//		cost := net.TrainOneSequence(inputs, targets, learningRate)
//
// where a nil target marks a step whose outputs don't matter (for example, the first steps of a
// task that requires remembering earlier inputs). The returned cost is the one found before the
// weights were adjusted.
//
// Longer runs are done with Train, which takes a TrainArgs, drawing sequences from a
// SequenceSupplier and reporting progress through Result:
//
//		err := net.Train(rc.TrainArgs{
//			TrainData:    data,
//			RunCondition: rc.TrainUntil(1000),
//			LearningRate: hyperparams.Constant(0.05),
//			SendStatus:   rc.Every(100),
//			Update:       func(r rc.Result) { fmt.Println(r.Iteration, r.Cost) },
//		})
//
// Misuse of a Layer or Network, such as mismatched sequence lengths or steps given out of order,
// panics. Numerical problems (such as a learning rate that is too high) are only logged, by Train.
package recurrent
