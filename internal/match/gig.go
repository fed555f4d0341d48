package match

import (
	"sort"

	"github.com/creatorlink/creatorlink/internal/common"
	"github.com/creatorlink/creatorlink/internal/geo"
)

// InfluencerMatch pairs a scored influencer with the score itself.
// RecommendedGigs is part of the response contract for the app but is
// not populated by the current scoring logic; it stays an empty,
// non-nil slice.
type InfluencerMatch struct {
	Influencer      *common.Influencer `json:"influencer"`
	MatchScore      *MatchScore        `json:"matchScore"`
	RecommendedGigs []*common.Gig      `json:"recommendedGigs"`
}

// GigMatch pairs a scored gig with its score for influencer-centric
// lookups.
type GigMatch struct {
	Gig        *common.Gig `json:"gig"`
	MatchScore *MatchScore `json:"matchScore"`
}

// CalculateInfluencerGigMatch scores one influencer against one gig.
// Pure: identical inputs always produce an identical MatchScore, and
// neither record is mutated.
func CalculateInfluencerGigMatch(inf *common.Influencer, gig *common.Gig) *MatchScore {
	category := categoryScore(inf.Categories, gig.Categories)
	follower := followerScore(inf.Followers, gig.Requirements)
	budget := budgetScore(inf.RatePerPost, gig.Price)
	location := geo.Score(inf.Location, gig.Location)
	engagement := engagementScore(inf.EngagementRate)
	priceCompat := priceCompatScore(inf.RatePerPost, gig.Price)

	total := category*gigWeights.Category +
		follower*gigWeights.FollowerSize +
		budget*gigWeights.Budget +
		location*gigWeights.Location +
		engagement*gigWeights.Engagement +
		priceCompat*gigWeights.PriceCompat

	// One reason per factor at most, highest tier wins. The engagement
	// reason keys off the raw rate, not the normalized sub-score; the
	// app copy depends on that asymmetry.
	reasons := make([]string, 0, 5)
	switch {
	case category >= 80:
		reasons = append(reasons, "Perfect category match")
	case category >= 60:
		reasons = append(reasons, "Good category alignment")
	}
	switch {
	case follower >= 90:
		reasons = append(reasons, "Ideal audience size")
	case follower >= 70:
		reasons = append(reasons, "Audience size works")
	}
	switch {
	case budget >= 85:
		reasons = append(reasons, "Budget aligns with your rate")
	case budget >= 70:
		reasons = append(reasons, "Budget is workable")
	}
	switch {
	case location >= 90:
		reasons = append(reasons, "Located in the same city")
	case location >= 60:
		reasons = append(reasons, "Location is compatible")
	}
	switch {
	case inf.EngagementRate >= 7:
		reasons = append(reasons, "Outstanding engagement rate")
	case inf.EngagementRate >= 5:
		reasons = append(reasons, "Strong engagement rate")
	}

	score := round(total)
	return &MatchScore{
		Score: score,
		Breakdown: Breakdown{
			CategoryMatch:      round(category),
			FollowerSizeMatch:  round(follower),
			BudgetMatch:        round(budget),
			LocationMatch:      round(location),
			EngagementRate:     round(engagement),
			PriceCompatibility: round(priceCompat),
		},
		Reasons:       reasons,
		Compatibility: compatibilityFor(score),
	}
}

// FindBestInfluencersForGig scores every influencer against the gig,
// drops anything under the viability cutoff, and returns the top
// matches by score. Equal scores keep their input order (stable sort).
// A limit <= 0 falls back to DefaultGigLimit.
func FindBestInfluencersForGig(influencers []*common.Influencer, gig *common.Gig, limit int) []*InfluencerMatch {
	if limit <= 0 {
		limit = DefaultGigLimit
	}

	matches := make([]*InfluencerMatch, 0, len(influencers))
	for _, inf := range influencers {
		ms := CalculateInfluencerGigMatch(inf, gig)
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

// FindBestGigsForInfluencer is the influencer-centric twin: only open
// gigs are considered, then the same score/filter/sort/truncate
// pipeline applies. A limit <= 0 falls back to DefaultGigLimit.
func FindBestGigsForInfluencer(inf *common.Influencer, gigs []*common.Gig, limit int) []*GigMatch {
	if limit <= 0 {
		limit = DefaultGigLimit
	}

	matches := make([]*GigMatch, 0, len(gigs))
	for _, gig := range gigs {
		if !gig.IsOpen() {
			continue
		}
		ms := CalculateInfluencerGigMatch(inf, gig)
		if ms.Score < minViableScore {
			continue
		}
		matches = append(matches, &GigMatch{Gig: gig, MatchScore: ms})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore.Score > matches[j].MatchScore.Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
