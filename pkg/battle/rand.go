package battle

import "math/rand/v2"

func float64From(r *rand.Rand) float64 {
	if r == nil {
		return rand.Float64()
	}
	return r.Float64()
}

func coinFrom(r *rand.Rand) bool {
	if r == nil {
		return rand.IntN(2) == 0
	}
	return r.IntN(2) == 0
}
