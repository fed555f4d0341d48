package common

// Influencer is the marketplace profile record the matching engine and
// handlers operate on. Social stats (followers, engagement) are ingested
// by the app; the engine never refreshes them.
type Influencer struct {
	Id string `json:"id"`

	Name string `json:"name,omitempty"`

	// Talent agency this influencer belongs to
	AgencyId string `json:"agencyId,omitempty"`

	// Self-reported content categories, freeform ("Fitness", "Food & Drink")
	Categories []string `json:"categories,omitempty"`

	Followers int64 `json:"followers,omitempty"`

	// Percentage, typically 0-15
	EngagementRate float64 `json:"engagementRate,omitempty"`

	// Asking price per sponsored post
	RatePerPost float64 `json:"ratePerPost,omitempty"`

	// Freeform "City, Region"
	Location string `json:"location,omitempty"`

	// Accepted deals that have not yet been completed
	ActiveDeals []*Deal `json:"activeDeals,omitempty"`
	// Completed and paid out deals
	CompletedDeals []*Deal `json:"completedDeals,omitempty"`
}
