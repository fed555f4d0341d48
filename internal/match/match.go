package match

import "math"

// Compatibility tiers derived from the final score.
const (
	CompatExcellent = "excellent"
	CompatGood      = "good"
	CompatFair      = "fair"
	CompatPoor      = "poor"
)

const (
	// Matches under this score are noise, not weak suggestions, and are
	// dropped by every ranker.
	minViableScore = 50

	DefaultGigLimit      = 10
	DefaultSponsorLimit  = 20
	DefaultSponsorBudget = 10000
)

// Factor weights for the influencer-gig score. Must sum to 1.0.
var gigWeights = struct {
	Category     float64
	FollowerSize float64
	Budget       float64
	Location     float64
	Engagement   float64
	PriceCompat  float64
}{
	Category:     0.30,
	FollowerSize: 0.20,
	Budget:       0.20,
	Location:     0.10,
	Engagement:   0.15,
	PriceCompat:  0.05,
}

// Factor weights for the sponsor-influencer score. Coarser than the gig
// weighting since sponsor profiles carry less granular data. Must sum
// to 1.0.
var sponsorWeights = struct {
	Category     float64
	Budget       float64
	Location     float64
	Engagement   float64
	FollowerTier float64
}{
	Category:     0.35,
	Budget:       0.25,
	Location:     0.15,
	Engagement:   0.15,
	FollowerTier: 0.10,
}

// Breakdown carries the six rounded sub-scores behind a match.
type Breakdown struct {
	CategoryMatch      int `json:"categoryMatch"`
	FollowerSizeMatch  int `json:"followerSizeMatch"`
	BudgetMatch        int `json:"budgetMatch"`
	LocationMatch      int `json:"locationMatch"`
	EngagementRate     int `json:"engagementRate"`
	PriceCompatibility int `json:"priceCompatibility"`
}

// MatchScore is the engine output: a 0-100 score, its factor breakdown,
// display reasons in evaluation order, and the compatibility tier.
type MatchScore struct {
	Score         int       `json:"score"`
	Breakdown     Breakdown `json:"breakdown"`
	Reasons       []string  `json:"reasons"`
	Compatibility string    `json:"compatibility"`
}

func compatibilityFor(score int) string {
	switch {
	case score >= 85:
		return CompatExcellent
	case score >= 70:
		return CompatGood
	case score >= 55:
		return CompatFair
	default:
		return CompatPoor
	}
}

func round(f float64) int {
	return int(math.Round(f))
}
