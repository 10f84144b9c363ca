package source

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Random generates days values from a standard normal distribution, shifted
// so the minimum is exactly 0. The same seed always yields the same series.
func Random(days int, seed uint64) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}

	vals := make([]float64, days)
	for i := range vals {
		vals[i] = dist.Rand()
	}
	floats.AddConst(-floats.Min(vals), vals)
	return vals
}
