package position

import (
	"math"
	"sort"
	"strings"
)

type tfidfModel struct {
	vocab   []string
	vocabIx map[string]int
	vectors [][]float64
}

// buildTFIDF vectorizes each document over the corpus vocabulary. The
// vocabulary is sorted so vector layout never depends on map iteration order.
func buildTFIDF(docs []string) tfidfModel {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tokens := strings.Fields(doc)
		tokenized[i] = tokens
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	vocab := make([]string, 0, len(df))
	for t := range df {
		vocab = append(vocab, t)
	}
	sort.Strings(vocab)

	vocabIx := make(map[string]int, len(vocab))
	for i, t := range vocab {
		vocabIx[t] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, t := range vocab {
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		if len(tokens) > 0 {
			for _, t := range tokens {
				vec[vocabIx[t]] += 1
			}
			total := float64(len(tokens))
			for j := range vec {
				vec[j] = (vec[j] / total) * idf[j]
			}
			l2normalize(vec)
		}
		vectors[i] = vec
	}

	return tfidfModel{vocab: vocab, vocabIx: vocabIx, vectors: vectors}
}

func l2normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

func cosineSim(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
