package match

import (
	"regexp"
	"strconv"
	"strings"
)

// Each factor returns a float in [0,100]. Rounding happens once, at the
// aggregation boundary, so intermediate math keeps full precision.

// categoryScore counts a subject category as matched when it is a
// case-insensitive substring of any target category or vice versa.
// Freeform taxonomies rarely align exactly; substring overlap tolerates
// plural/singular and compound-word variation ("Fitness" vs
// "Fitness & Wellness").
func categoryScore(subject, target []string) float64 {
	if len(subject) == 0 || len(target) == 0 {
		return 0
	}

	matches := 0
	for _, s := range subject {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		for _, t := range target {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" {
				continue
			}
			if strings.Contains(t, s) || strings.Contains(s, t) {
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 0
	}

	denom := len(subject)
	if len(target) > denom {
		denom = len(target)
	}
	return float64(matches) / float64(denom) * 100
}

var followerReqPattern = regexp.MustCompile(`(?i)(\d+)k\+`)

// parseFollowerRequirement scans freeform requirement strings for a
// "<N>k+" follower floor. Returns 0 when no requirement is stated.
func parseFollowerRequirement(requirements []string) int64 {
	for _, req := range requirements {
		m := followerReqPattern.FindStringSubmatch(req)
		if m == nil {
			continue
		}
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			return n * 1000
		}
	}
	return 0
}

// followerScore rates audience size against a parsed follower floor.
// Extreme over-qualification is penalized since it usually signals a
// budget mismatch; being under the floor earns partial credit capped at
// 50 so "close but under" still reads differently from "wildly
// unqualified". No stated requirement is not a negative signal → 75.
func followerScore(followers int64, requirements []string) float64 {
	required := parseFollowerRequirement(requirements)
	if required == 0 {
		return 75
	}

	ratio := float64(followers) / float64(required)
	if followers >= required {
		switch {
		case ratio <= 3:
			return 100
		case ratio <= 5:
			return 85
		default:
			return 70
		}
	}

	if score := ratio * 100; score < 50 {
		return score
	}
	return 50
}

// budgetScore rates the gig price against the influencer's asking rate.
// Both under- and over-shooting are penalized on the same schedule; a
// moderate premium (up to 1.3x) still counts as fully compatible since
// sponsors routinely pay above baseline for strong fits. A zero rate
// carries no signal and scores neutral.
func budgetScore(rate, price float64) float64 {
	if rate == 0 {
		return 50
	}

	ratio := price / rate
	switch {
	case ratio >= 0.9 && ratio <= 1.3:
		return 100
	case (ratio >= 0.7 && ratio < 0.9) || (ratio > 1.3 && ratio <= 1.5):
		return 85
	case (ratio >= 0.5 && ratio < 0.7) || (ratio > 1.5 && ratio <= 2):
		return 70
	case (ratio >= 0.3 && ratio < 0.5) || (ratio > 2 && ratio <= 3):
		return 50
	default:
		return 30
	}
}

// engagementScore buckets the raw engagement percentage on fixed
// industry-typical breakpoints.
func engagementScore(pct float64) float64 {
	switch {
	case pct >= 8:
		return 100
	case pct >= 6:
		return 90
	case pct >= 4:
		return 75
	case pct >= 2:
		return 60
	default:
		return 40
	}
}

// priceCompatScore is the one-directional tie-breaker: does the price
// clear enough of the asking rate? Same zero-rate guard as budgetScore.
func priceCompatScore(rate, price float64) float64 {
	if rate == 0 {
		return 50
	}

	switch {
	case price >= rate*0.8:
		return 100
	case price >= rate*0.6:
		return 75
	case price >= rate*0.4:
		return 50
	default:
		return 25
	}
}

// followerTierScore is the coarse step function used on the sponsor
// side, which has no requirement text to parse a floor out of.
func followerTierScore(followers int64) float64 {
	switch {
	case followers >= 100000:
		return 100
	case followers >= 50000:
		return 85
	case followers >= 10000:
		return 70
	default:
		return 50
	}
}

// industryScore is boolean-ish: 85 when any influencer category fuzzy
// matches an "&"-split sponsor-industry token, else 50.
func industryScore(industry string, categories []string) float64 {
	for _, token := range strings.Split(strings.ToLower(industry), "&") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		for _, cat := range categories {
			cat = strings.ToLower(strings.TrimSpace(cat))
			if cat == "" {
				continue
			}
			if strings.Contains(token, cat) || strings.Contains(cat, token) {
				return 85
			}
		}
	}
	return 50
}
