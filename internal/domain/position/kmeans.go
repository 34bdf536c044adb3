package position

// kmeansCosine partitions the vectors into k clusters. Centers are seeded
// farthest-first from index 0 and ties resolve to the lowest index, so the
// assignment is deterministic for identical input.
func kmeansCosine(vectors [][]float64, k, iters int) []int {
	n := len(vectors)
	if n == 0 {
		return nil
	}
	assign := make([]int, n)
	if k <= 1 {
		return assign
	}
	if k > n {
		k = n
	}
	if iters <= 0 {
		iters = defaultKMeansIters
	}

	dim := len(vectors[0])
	centers := make([][]float64, 0, k)
	centers = append(centers, append([]float64(nil), vectors[0]...))

	for len(centers) < k {
		bestIdx := 0
		bestDist := -1.0
		for i := 0; i < n; i++ {
			minSim := 1.0
			for _, c := range centers {
				sim := cosineSim(vectors[i], c)
				if sim < minSim {
					minSim = sim
				}
			}
			dist := 1.0 - minSim
			if dist > bestDist {
				bestDist = dist
				bestIdx = i
			}
		}
		centers = append(centers, append([]float64(nil), vectors[bestIdx]...))
	}

	for iter := 0; iter < iters; iter++ {
		changed := false

		for i := 0; i < n; i++ {
			bestC := 0
			bestSim := -1.0
			for c := 0; c < len(centers); c++ {
				sim := cosineSim(vectors[i], centers[c])
				if sim > bestSim {
					bestSim = sim
					bestC = c
				}
			}
			if assign[i] != bestC {
				assign[i] = bestC
				changed = true
			}
		}

		counts := make([]int, len(centers))
		next := make([][]float64, len(centers))
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i := 0; i < n; i++ {
			c := assign[i]
			counts[c]++
			for j, v := range vectors[i] {
				next[c][j] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Empty cluster keeps its previous center.
				next[c] = centers[c]
				continue
			}
			for j := range next[c] {
				next[c][j] /= float64(counts[c])
			}
			l2normalize(next[c])
		}
		centers = next

		if !changed {
			break
		}
	}

	return assign
}
