package position

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
)

const (
	defaultClusters    = 5
	defaultNeighbors   = 10
	defaultMinDist     = 0.1
	defaultEpochs      = 200
	defaultKMeansIters = 25
	defaultTopSkills   = 10
	defaultSeed        = 42
)

type Config struct {
	Clusters  int
	Neighbors int
	MinDist   float64
	Epochs    int
	TopSkills int
	Seed      int64
}

func DefaultConfig() Config {
	return Config{
		Clusters:  defaultClusters,
		Neighbors: defaultNeighbors,
		MinDist:   defaultMinDist,
		Epochs:    defaultEpochs,
		TopSkills: defaultTopSkills,
		Seed:      defaultSeed,
	}
}

type SkillWeight struct {
	Token  string
	Weight float64
}

type SkillPosition struct {
	EmployeeID uuid.UUID
	X          float64
	Y          float64
	Cluster    int
	TopSkills  []SkillWeight
}

// BuildPositions runs the full batch over the employee population: TF-IDF
// vectorization, 2-D embedding and clustering. The whole result is recomputed
// from scratch on every call; there is no incremental variant. An empty or
// token-free population yields an empty slice.
func BuildPositions(skillTexts map[uuid.UUID]string, cfg Config) []SkillPosition {
	if len(skillTexts) == 0 {
		return []SkillPosition{}
	}

	ids := make([]uuid.UUID, 0, len(skillTexts))
	for id := range skillTexts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	docs := make([]string, len(ids))
	hasTokens := false
	for i, id := range ids {
		docs[i] = skillTexts[id]
		if docs[i] != "" {
			hasTokens = true
		}
	}
	if !hasTokens {
		return []SkillPosition{}
	}

	model := buildTFIDF(docs)
	if len(model.vocab) == 0 {
		return []SkillPosition{}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	rng := rand.New(rand.NewSource(seed))

	coords := embed2D(model.vectors, cfg, rng)

	clusters := cfg.Clusters
	if clusters <= 0 {
		clusters = defaultClusters
	}
	assign := kmeansCosine(model.vectors, clusters, defaultKMeansIters)

	topN := cfg.TopSkills
	if topN <= 0 {
		topN = defaultTopSkills
	}

	out := make([]SkillPosition, len(ids))
	for i, id := range ids {
		out[i] = SkillPosition{
			EmployeeID: id,
			X:          coords[i][0],
			Y:          coords[i][1],
			Cluster:    assign[i],
			TopSkills:  topSkills(model.vectors[i], model.vocab, topN),
		}
	}
	return out
}

func topSkills(vec []float64, vocab []string, n int) []SkillWeight {
	weights := make([]SkillWeight, 0, len(vec))
	for i, w := range vec {
		if w <= 0 {
			continue
		}
		weights = append(weights, SkillWeight{Token: vocab[i], Weight: w})
	}
	sort.SliceStable(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Token < weights[j].Token
	})
	if len(weights) > n {
		weights = weights[:n]
	}
	return weights
}
