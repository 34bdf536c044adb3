package position

import (
	"math"
	"math/rand"
	"sort"
)

type neighbor struct {
	index int
	sim   float64
}

// embed2D projects the vectors to two dimensions with a neighborhood-
// preserving force layout: each point is pulled toward its cosine-nearest
// neighbors and pushed away from randomly sampled non-neighbors. All
// randomness comes from the seeded rng, so identical input produces
// bit-identical coordinates.
func embed2D(vectors [][]float64, cfg Config, rng *rand.Rand) [][2]float64 {
	n := len(vectors)
	coords := make([][2]float64, n)
	if n == 0 {
		return coords
	}
	if n == 1 {
		return coords
	}

	neighbors := nearestNeighbors(vectors, cfg.Neighbors)

	for i := range coords {
		coords[i][0] = rng.Float64()*2 - 1
		coords[i][1] = rng.Float64()*2 - 1
	}

	epochs := cfg.Epochs
	if epochs <= 0 {
		epochs = defaultEpochs
	}
	minDist := cfg.MinDist
	if minDist <= 0 {
		minDist = defaultMinDist
	}

	for epoch := 0; epoch < epochs; epoch++ {
		alpha := 1.0 - float64(epoch)/float64(epochs)
		if alpha < 0.05 {
			alpha = 0.05
		}

		for i := 0; i < n; i++ {
			for _, nb := range neighbors[i] {
				attract(&coords[i], &coords[nb.index], nb.sim, minDist, alpha)

				// One random repulsion sample per attractive move keeps
				// unrelated points from collapsing onto each other.
				r := rng.Intn(n)
				if r != i {
					repulse(&coords[i], &coords[r], minDist, alpha)
				}
			}
		}
	}

	center(coords)
	return coords
}

func nearestNeighbors(vectors [][]float64, k int) [][]neighbor {
	n := len(vectors)
	if k <= 0 {
		k = defaultNeighbors
	}
	if k >= n {
		k = n - 1
	}

	out := make([][]neighbor, n)
	for i := 0; i < n; i++ {
		cands := make([]neighbor, 0, n-1)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cands = append(cands, neighbor{index: j, sim: cosineSim(vectors[i], vectors[j])})
		}
		sort.SliceStable(cands, func(a, b int) bool {
			if cands[a].sim != cands[b].sim {
				return cands[a].sim > cands[b].sim
			}
			return cands[a].index < cands[b].index
		})
		if len(cands) > k {
			cands = cands[:k]
		}
		out[i] = cands
	}
	return out
}

func attract(p, q *[2]float64, sim, minDist, alpha float64) {
	dx := q[0] - p[0]
	dy := q[1] - p[1]
	d := math.Hypot(dx, dy)
	if d <= minDist {
		return
	}
	pull := alpha * 0.1 * sim * (d - minDist) / d
	p[0] += dx * pull
	p[1] += dy * pull
}

func repulse(p, q *[2]float64, minDist, alpha float64) {
	dx := q[0] - p[0]
	dy := q[1] - p[1]
	d := math.Hypot(dx, dy)
	if d >= 1.0 {
		return
	}
	if d < 1e-9 {
		// Coincident points get a tiny deterministic nudge.
		p[0] -= alpha * 0.01
		return
	}
	push := alpha * 0.02 * (1.0 - d) / d
	if d < minDist {
		push = alpha * 0.05 / d
	}
	p[0] -= dx * push
	p[1] -= dy * push
}

func center(coords [][2]float64) {
	if len(coords) == 0 {
		return
	}
	var cx, cy float64
	for _, c := range coords {
		cx += c[0]
		cy += c[1]
	}
	cx /= float64(len(coords))
	cy /= float64(len(coords))
	for i := range coords {
		coords[i][0] -= cx
		coords[i][1] -= cy
	}
}
