package match

import (
	"sort"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/internal/geo"
)

// CalculateSponsorInfluencerMatch scores one influencer for a sponsor
// using the coarser industry heuristics. The supplied budget plays the
// counterparty-price role in the budget factor; a budget <= 0 falls
// back to DefaultSponsorBudget, which materially changes output for
// callers who omit it.
func CalculateSponsorInfluencerMatch(sp *common.Sponsor, inf *common.Influencer, budget float64) *MatchScore {
	if budget <= 0 {
		budget = DefaultSponsorBudget
	}

	category := industryScore(sp.Industry, inf.Categories)
	budgetFit := budgetScore(inf.RatePerPost, budget)
	location := geo.Score(inf.Location, sp.Location)
	engagement := engagementScore(inf.EngagementRate)
	tier := followerTierScore(inf.Followers)

	total := category*sponsorWeights.Category +
		budgetFit*sponsorWeights.Budget +
		location*sponsorWeights.Location +
		engagement*sponsorWeights.Engagement +
		tier*sponsorWeights.FollowerTier

	// Single-threshold reasons; the sponsor side has no good-vs-perfect
	// tiers.
	reasons := make([]string, 0, 5)
	if category >= 85 {
		reasons = append(reasons, "Industry overlaps with content categories")
	}
	if budgetFit >= 85 {
		reasons = append(reasons, "Budget fits the creator's rate")
	}
	if location >= 70 {
		reasons = append(reasons, "Nearby location")
	}
	if engagement >= 75 {
		reasons = append(reasons, "Highly engaged audience")
	}
	if tier >= 85 {
		reasons = append(reasons, "Large follower base")
	}

	score := round(total)
	return &MatchScore{
		Score: score,
		Breakdown: Breakdown{
			CategoryMatch:     round(category),
			FollowerSizeMatch: round(tier),
			BudgetMatch:       round(budgetFit),
			LocationMatch:     round(location),
			EngagementRate:    round(engagement),
			// Carries no weight on the sponsor side; reported so the
			// breakdown shape stays uniform for the app.
			PriceCompatibility: round(priceCompatScore(inf.RatePerPost, budget)),
		},
		Reasons:       reasons,
		Compatibility: compatibilityFor(score),
	}
}

// FindBestInfluencersForSponsor ranks a pool of influencers for a
// sponsor: score, drop anything under the viability cutoff, stable sort
// descending, truncate. A limit <= 0 falls back to DefaultSponsorLimit
// and a budget <= 0 to DefaultSponsorBudget.
func FindBestInfluencersForSponsor(sp *common.Sponsor, influencers []*common.Influencer, budget float64, limit int) []*InfluencerMatch {
	if limit <= 0 {
		limit = DefaultSponsorLimit
	}

	matches := make([]*InfluencerMatch, 0, len(influencers))
	for _, inf := range influencers {
		ms := CalculateSponsorInfluencerMatch(sp, inf, budget)
		if ms.Score < minViableScore {
			continue
		}
		matches = append(matches, &InfluencerMatch{
			Influencer:      inf,
			MatchScore:      ms,
			RecommendedGigs: []*common.Gig{},
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore.Score > matches[j].MatchScore.Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
