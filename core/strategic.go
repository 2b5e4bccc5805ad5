package core

import (
	"math"
	"sort"

	"github.com/seojoon/ypindex/internal/contract"
	"github.com/seojoon/ypindex/schema"
)

// ComputeStrategicIntensity scores how broad and balanced a region's policy
// portfolio is, relative to the peer group of the given tier. Dual-role
// regions are scored once per tier from the same raw counts.
//
// Each category's project count is turned into a standing inside the peer
// distribution (percentile or z-score CDF), squashed by the configured
// transform, and summed. A normalized Shannon entropy of the count
// distribution is added as a balance bonus.
func ComputeStrategicIntensity(cfg *contract.Config, stats *PeerStats, region string, tier schema.Tier) schema.StrategicResult {
	result := schema.StrategicResult{
		CategoryScores: make(map[schema.PolicyCategory]float64, len(schema.AllCategories)),
		CategoryCounts: make(map[schema.PolicyCategory]int, len(schema.AllCategories)),
	}

	counts, ok := stats.Counts(region)
	if !ok {
		// Region absent from the snapshot: all-zero result, never a failure.
		for _, cat := range schema.AllCategories {
			result.CategoryScores[cat] = 0
			result.CategoryCounts[cat] = 0
		}
		return result
	}

	for _, cat := range schema.AllCategories {
		value := counts[cat]
		standing := peerStanding(cfg.Method, stats.Distribution(tier, cat), value)
		score := squash(cfg, standing)

		result.CategoryScores[cat] = score
		result.CategoryCounts[cat] = value
		result.CategoryTotal += score
	}

	result.Entropy, result.EntropyScore = entropyBalance(counts)
	result.Intensity = result.CategoryTotal + result.EntropyScore
	return result
}

// peerStanding computes the region's relative standing in [0,1] inside a
// sorted peer distribution.
func peerStanding(method schema.ComparisonMethod, sorted []int, value int) float64 {
	if len(sorted) == 0 {
		return 0
	}

	if method == schema.PercentileMethod {
		// Fraction of peer values <= value.
		idx := sort.Search(len(sorted), func(i int) bool { return sorted[i] > value })
		return float64(idx) / float64(len(sorted))
	}

	// Z-score method: standard-normal CDF of the value given the peer group
	// mean and sample standard deviation. Zero variance yields the neutral
	// standing 0.5.
	mean, std := meanStd(sorted)
	if std <= 0 {
		return 0.5
	}
	z := (float64(value) - mean) / std
	return normalCDF(z)
}

// squash applies the configured transform to a standing.
func squash(cfg *contract.Config, x float64) float64 {
	switch cfg.Scaling {
	case schema.SigmoidScaling:
		return 1 / (1 + math.Exp(-cfg.SigmoidK*(x-0.5)))
	case schema.RootScaling:
		return math.Pow(x, 1/cfg.RootN)
	default:
		return x
	}
}

// entropyBalance computes the base-2 Shannon entropy of the project-count
// distribution over active categories, plus its normalization by
// log2(active). Fewer than two active categories yields 0.
func entropyBalance(counts map[schema.PolicyCategory]int) (entropy, score float64) {
	total := 0
	active := 0
	for _, cat := range schema.AllCategories {
		if counts[cat] > 0 {
			active++
			total += counts[cat]
		}
	}
	if total == 0 {
		return 0, 0
	}

	for _, cat := range schema.AllCategories {
		if counts[cat] == 0 {
			continue
		}
		p := float64(counts[cat]) / float64(total)
		entropy -= p * math.Log2(p)
	}

	if active < 2 {
		return entropy, 0
	}
	maxEntropy := math.Log2(float64(active))
	if maxEntropy <= 0 {
		return entropy, 0
	}
	return entropy, entropy / maxEntropy
}

// meanStd returns the mean and sample standard deviation of a distribution.
func meanStd(values []int) (mean, std float64) {
	n := len(values)
	if n == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean = sum / float64(n)
	if n < 2 {
		return mean, 0
	}
	var sqDiff float64
	for _, v := range values {
		d := float64(v) - mean
		sqDiff += d * d
	}
	return mean, math.Sqrt(sqDiff / float64(n-1))
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}
