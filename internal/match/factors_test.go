package match

import (
	"math"
	"testing"
)

func TestCategoryScore(t *testing.T) {
	// Substring overlap both directions, case-insensitive
	if s := categoryScore([]string{"Fitness"}, []string{"Fitness & Wellness"}); s != 100 {
		t.Errorf("expected 100 for compound-word overlap, got %v", s)
	}
	if s := categoryScore([]string{"Fitness", "Wellness"}, []string{"Fitness"}); s != 50 {
		t.Errorf("expected 50 for one of two categories matched, got %v", s)
	}
	if s := categoryScore([]string{"Gaming"}, []string{"Fashion"}); s != 0 {
		t.Errorf("expected 0 for no overlap, got %v", s)
	}
	if s := categoryScore(nil, []string{"Fashion"}); s != 0 {
		t.Errorf("expected 0 for empty subject, got %v", s)
	}
	if s := categoryScore([]string{"FITNESS"}, []string{"fitness"}); s != 100 {
		t.Errorf("expected case-insensitive match, got %v", s)
	}
}

func TestCategoryScoreMonotonic(t *testing.T) {
	// Growing the overlap toward a superset never lowers the score
	target := []string{"Fitness", "Travel"}
	small := categoryScore([]string{"Fitness"}, target)
	large := categoryScore([]string{"Fitness", "Travel"}, target)
	if large < small {
		t.Errorf("superset overlap lowered score: %v -> %v", small, large)
	}
}

func TestParseFollowerRequirement(t *testing.T) {
	if r := parseFollowerRequirement([]string{"50k+ followers"}); r != 50000 {
		t.Errorf("expected 50000, got %d", r)
	}
	if r := parseFollowerRequirement([]string{"professional photos", "100K+ audience"}); r != 100000 {
		t.Errorf("expected 100000 from second requirement, got %d", r)
	}
	if r := parseFollowerRequirement([]string{"must love dogs"}); r != 0 {
		t.Errorf("expected 0 when no floor stated, got %d", r)
	}
	if r := parseFollowerRequirement(nil); r != 0 {
		t.Errorf("expected 0 for nil requirements, got %d", r)
	}
}

func TestFollowerScore(t *testing.T) {
	reqs := []string{"50k+ followers"}

	// ratio 2.5, inside [1,3]
	if s := followerScore(125000, reqs); s != 100 {
		t.Errorf("expected 100 at ratio 2.5, got %v", s)
	}
	// ratio 4, inside (3,5]
	if s := followerScore(200000, reqs); s != 85 {
		t.Errorf("expected 85 at ratio 4, got %v", s)
	}
	// ratio 10, over-qualified
	if s := followerScore(500000, reqs); s != 70 {
		t.Errorf("expected 70 at ratio 10, got %v", s)
	}
	// Under the floor: partial credit capped at 50
	if s := followerScore(40000, reqs); s != 50 {
		t.Errorf("expected capped 50 just under the floor, got %v", s)
	}
	if s := followerScore(10000, reqs); s != 20 {
		t.Errorf("expected 20 at 20%% of the floor, got %v", s)
	}
	// No stated requirement is a neutral-positive signal
	if s := followerScore(500, []string{"must post twice"}); s != 75 {
		t.Errorf("expected 75 with no floor, got %v", s)
	}
}

func TestBudgetScore(t *testing.T) {
	cases := []struct {
		rate, price float64
		want        float64
	}{
		{2500, 3000, 100}, // ratio 1.2
		{1000, 900, 100},  // ratio 0.9, bottom edge
		{1000, 1300, 100}, // ratio 1.3, top edge
		{1000, 800, 85},   // ratio 0.8
		{1000, 1400, 85},  // ratio 1.4
		{1000, 600, 70},   // ratio 0.6
		{1000, 1800, 70},  // ratio 1.8
		{1000, 400, 50},   // ratio 0.4
		{1000, 2500, 50},  // ratio 2.5
		{1000, 100, 30},   // ratio 0.1
		{1000, 5000, 30},  // ratio 5
		{0, 3000, 50},     // zero rate guard
	}
	for _, c := range cases {
		if got := budgetScore(c.rate, c.price); got != c.want {
			t.Errorf("budgetScore(%v, %v) = %v, want %v", c.rate, c.price, got, c.want)
		}
	}
}

func TestEngagementScore(t *testing.T) {
	cases := []struct {
		pct, want float64
	}{
		{9, 100}, {8, 100}, {6.5, 90}, {4.2, 75}, {2, 60}, {1.9, 40}, {0, 40},
	}
	for _, c := range cases {
		if got := engagementScore(c.pct); got != c.want {
			t.Errorf("engagementScore(%v) = %v, want %v", c.pct, got, c.want)
		}
	}
}

func TestPriceCompatScore(t *testing.T) {
	cases := []struct {
		rate, price float64
		want        float64
	}{
		{2500, 3000, 100},
		{1000, 800, 100},
		{1000, 700, 75},
		{1000, 500, 50},
		{1000, 300, 25},
		{0, 500, 50}, // zero rate guard
	}
	for _, c := range cases {
		if got := priceCompatScore(c.rate, c.price); got != c.want {
			t.Errorf("priceCompatScore(%v, %v) = %v, want %v", c.rate, c.price, got, c.want)
		}
	}
}

func TestFollowerTierScore(t *testing.T) {
	cases := []struct {
		followers int64
		want      float64
	}{
		{250000, 100}, {100000, 100}, {60000, 85}, {20000, 70}, {900, 50},
	}
	for _, c := range cases {
		if got := followerTierScore(c.followers); got != c.want {
			t.Errorf("followerTierScore(%d) = %v, want %v", c.followers, got, c.want)
		}
	}
}

func TestIndustryScore(t *testing.T) {
	// "&"-split token fuzzy match
	if s := industryScore("Sports & Fitness", []string{"Fitness"}); s != 85 {
		t.Errorf("expected 85 for split-token match, got %v", s)
	}
	if s := industryScore("Automotive", []string{"Fitness"}); s != 50 {
		t.Errorf("expected 50 for no overlap, got %v", s)
	}
	if s := industryScore("", []string{"Fitness"}); s != 50 {
		t.Errorf("expected 50 for empty industry, got %v", s)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	gig := gigWeights.Category + gigWeights.FollowerSize + gigWeights.Budget +
		gigWeights.Location + gigWeights.Engagement + gigWeights.PriceCompat
	if math.Abs(gig-1.0) > 1e-9 {
		t.Errorf("gig weights sum to %v, want 1.0", gig)
	}

	sponsor := sponsorWeights.Category + sponsorWeights.Budget + sponsorWeights.Location +
		sponsorWeights.Engagement + sponsorWeights.FollowerTier
	if math.Abs(sponsor-1.0) > 1e-9 {
		t.Errorf("sponsor weights sum to %v, want 1.0", sponsor)
	}
}
