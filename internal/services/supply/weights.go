package supply

import "github.com/KirkDiggler/imaginarium/internal/cards"

// Weights turns source card counts into selection weights. Unlimited sources
// weigh the mean of the finite counts, so a bottomless source neither
// dominates nor starves the others. With no finite count at all every
// source weighs 1.
func Weights(counts []int) []float64 {
	weights := make([]float64, len(counts))

	var sum float64
	finite := 0
	for _, c := range counts {
		if c == cards.Unlimited {
			continue
		}
		sum += float64(c)
		finite++
	}

	fill := 1.0
	if finite > 0 {
		fill = sum / float64(finite)
	}

	for i, c := range counts {
		if c == cards.Unlimited {
			weights[i] = fill
			continue
		}
		weights[i] = float64(c)
	}

	return weights
}

// pick returns an index chosen with probability proportional to its weight.
// u is uniform in [0, 1). All-zero weights fall back to a uniform choice.
func pick(weights []float64, u float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return int(u * float64(len(weights)))
	}

	target := u * total
	for i, w := range weights {
		if target < w {
			return i
		}
		target -= w
	}
	return len(weights) - 1
}
