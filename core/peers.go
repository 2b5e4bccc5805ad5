package core

import (
	"sort"

	"github.com/seojoon/ypindex/schema"
)

// PeerStats is the read-only snapshot of per-tier category count
// distributions. It is built exactly once per run, before any per-region
// scoring begins, and shared across all evaluations.
type PeerStats struct {
	distributions map[schema.Tier]map[schema.PolicyCategory][]int
	regionCounts  map[string]map[schema.PolicyCategory]int
	groupSizes    map[schema.Tier]int
}

// BuildPeerStats computes category project counts for every region and
// groups the distributions by evaluation tier. Dual-role regions contribute
// the same counts to both tiers.
func BuildPeerStats(regions []schema.Region) *PeerStats {
	stats := &PeerStats{
		distributions: map[schema.Tier]map[schema.PolicyCategory][]int{
			schema.MetroTier: make(map[schema.PolicyCategory][]int),
			schema.BasicTier: make(map[schema.PolicyCategory][]int),
		},
		regionCounts: make(map[string]map[schema.PolicyCategory]int, len(regions)),
		groupSizes:   make(map[schema.Tier]int),
	}

	for i := range regions {
		region := &regions[i]
		counts := make(map[schema.PolicyCategory]int, len(schema.AllCategories))
		for _, cat := range schema.AllCategories {
			counts[cat] = region.ProjectCount(cat)
		}
		stats.regionCounts[region.Name] = counts

		for _, tier := range region.EvaluatesAs {
			stats.groupSizes[tier]++
			for _, cat := range schema.AllCategories {
				stats.distributions[tier][cat] = append(stats.distributions[tier][cat], counts[cat])
			}
		}
	}

	// Sorted distributions make percentile lookups a simple binary search.
	for _, byCat := range stats.distributions {
		for _, dist := range byCat {
			sort.Ints(dist)
		}
	}
	return stats
}

// Counts returns the per-category project counts for a region. The second
// return value is false for regions absent from the snapshot.
func (s *PeerStats) Counts(region string) (map[schema.PolicyCategory]int, bool) {
	counts, ok := s.regionCounts[region]
	return counts, ok
}

// Distribution returns the sorted count distribution for one category
// within one tier's peer group.
func (s *PeerStats) Distribution(tier schema.Tier, cat schema.PolicyCategory) []int {
	return s.distributions[tier][cat]
}

// GroupSize returns the number of regions evaluated under a tier.
func (s *PeerStats) GroupSize(tier schema.Tier) int {
	return s.groupSizes[tier]
}
