// Command seqtasks trains a recurrent.Network on one of a few toy sequence tasks, logging the
// cost as it goes.
package main

import (
	"flag"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	rc "github.com/sharnoff/recurrent"
	"github.com/sharnoff/recurrent/activations"
	_ "github.com/sharnoff/recurrent/costfuncs"
	"github.com/sharnoff/recurrent/hyperparams"
	"github.com/sharnoff/recurrent/initializers"
)

const (
	statusFrequency int = 100
	testSize        int = 20
)

type options struct {
	task         string
	activation   string
	cost         string
	schedule     string
	learningRate float64
	iterations   int
	seed         int64
	verbose      bool
}

func taskNames() string {
	var names []string
	for n := range tasks {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.task, "task", "lag1", "task to train on: "+taskNames())
	flag.StringVar(&o.activation, "activation", activations.Identity().TypeString(), "activation of the recurrent neurons")
	flag.StringVar(&o.cost, "cost", "mse", "cost function of the output layer")
	flag.StringVar(&o.schedule, "schedule", hyperparams.Constant(0).TypeString(), "learning rate schedule")
	flag.Float64Var(&o.learningRate, "lr", 0, "learning rate (0 uses the task's default)")
	flag.IntVar(&o.iterations, "iters", 0, "number of sequences to train on (0 uses the task's default)")
	flag.Int64Var(&o.seed, "seed", 1, "seed for initialization and data")
	flag.BoolVar(&o.verbose, "v", false, "log every sequence")
	flag.Parse()
	return o
}

func build(o options, t task) (*rc.Network, error) {
	act, err := rc.GetActivation(o.activation)
	if err != nil {
		return nil, err
	}

	cf, err := rc.GetCostFunction(o.cost)
	if err != nil {
		return nil, err
	}

	initializers.Seed(o.seed)
	weights := initializers.Random(initializers.Uniform().Bounds(0, 0.1)).Weights()
	zero := initializers.Constant(0).Biases()

	layer := rc.NewLayer(1, 1, t.stateSize,
		rc.SublayerArgs{Weights: weights, Biases: zero, Activation: act},
		rc.SublayerArgs{Weights: weights, Biases: zero, Activation: activations.Identity()},
	)
	out := rc.NewOutputLayer(1, 1, initializers.Constant(1).Weights(), zero, activations.Identity(), cf)

	net, err := rc.NewNetwork(layer, out)
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't create network")
	}

	return net, nil
}

func run(o options, log *logrus.Logger) error {
	t, ok := tasks[o.task]
	if !ok {
		return errors.Errorf("Unknown task %q (expected one of: %s)", o.task, taskNames())
	}

	if o.learningRate == 0 {
		o.learningRate = t.learningRate
	}
	if o.iterations == 0 {
		o.iterations = t.iterations
	}

	lr, err := rc.GetHyperParameter(o.schedule, o.learningRate)
	if err != nil {
		return err
	}

	net, err := build(o, t)
	if err != nil {
		return err
	}
	net.SetLogger(log)

	r := rand.New(rand.NewSource(o.seed))
	data, err := rc.Generator(func(iter int) rc.Sequence { return t.gen(r, iter) }, testSize)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"task":          o.task,
		"state_size":    t.stateSize,
		"learning_rate": o.learningRate,
		"iterations":    o.iterations,
	}).Info("Starting training")

	err = net.Train(rc.TrainArgs{
		TrainData:    data,
		TestData:     data,
		ShouldTest:   func(iter int) bool { return iter == o.iterations },
		SendStatus:   rc.Every(statusFrequency),
		RunCondition: rc.TrainUntil(o.iterations),
		LearningRate: lr,
		IsCorrect:    rc.Within(0.05),
	})
	if err != nil {
		return errors.Wrap(err, "Training failed")
	}

	log.WithFields(logrus.Fields{
		"recurrent_weights": net.Layer.RecurrentTree.Weights,
		"output_weights":    net.Layer.OutputTree.Weights,
		"final_state":       net.Layer.State,
	}).Info("Done training")

	return nil
}

func main() {
	o := parseFlags()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if o.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(o, log); err != nil {
		log.WithError(err).Error("seqtasks failed")
		os.Exit(1)
	}
}
