package initializers

import (
	"math/rand"
	"sync"
	"time"
)

// the source shared by every RNG in this package, so that Seed makes initialization repeatable
var source = struct {
	sync.Mutex
	*rand.Rand
}{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}

// Seed resets the random source used by every RNG in this package. Two Networks built after the
// same call to Seed (and with the same construction order) will have identical weights.
func Seed(seed int64) {
	source.Lock()
	source.Rand = rand.New(rand.NewSource(seed))
	source.Unlock()
}

func float64Rand() float64 {
	source.Lock()
	defer source.Unlock()
	return source.Float64()
}

func normFloat64Rand() float64 {
	source.Lock()
	defer source.Unlock()
	return source.NormFloat64()
}

// RNG needs no explanation
type RNG interface {
	Gen() float64
}

type uniform struct {
	lower, upper float64
}

// Uniform returns RNG that gives values uniformly spread between its bounds, which can be set by
// Bounds. The defaults ("uniform-lower" and "uniform-upper") can be set by SetDefault.
func Uniform() *uniform {
	return &uniform{defaultValue["uniform-lower"], defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Gen is the implementation of RNG for Uniform. It returns a random number.
func (u *uniform) Gen() float64 {
	return float64Rand()*(u.upper-u.lower) + u.lower
}

type normal struct {
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center
// and standard deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for
// "normal-mean" and "normal-sd".
func Normal() *normal {
	return &normal{defaultValue["normal-mean"], defaultValue["normal-sd"]}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Gen is the implementation of RNG for Normal. It returns a random number.
func (n *normal) Gen() float64 {
	return normFloat64Rand()*n.σ + n.µ
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within an truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The center
// ad standard deviation can be set in the same way as Normal, because Normal is
// embedded in the TruncNormal type.
//
// Additionally, the number of standard deviations to truncate at can be set by
// Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Gen is the implementation of RNG for TruncNormal. It returns a random number.
func (t *truncNormal) Gen() float64 {
	for {
		v := normFloat64Rand()
		if v < -t.trunc || v > t.trunc {
			continue
		}

		return v*t.σ + t.µ
	}
}
