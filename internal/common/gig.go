package common

const (
	GigStatusOpen      = "open"
	GigStatusAssigned  = "assigned"
	GigStatusCompleted = "completed"
	GigStatusCancelled = "cancelled"
)

// Gig is a sponsor-posted opportunity listing that influencers apply to.
type Gig struct {
	Id        string `json:"id"`
	SponsorId string `json:"sponsorId,omitempty"`

	Name string `json:"name,omitempty"`

	Categories []string `json:"categories,omitempty"`

	// Freeform constraints shown to applicants. A follower floor may be
	// embedded as "50k+ followers"; the engine parses it out.
	Requirements []string `json:"requirements,omitempty"`

	// Payout offered for the gig
	Price float64 `json:"price,omitempty"`

	// Optional "City, Region"
	Location string `json:"location,omitempty"`

	// One of the GigStatus constants. Only open gigs are matched.
	Status string `json:"status,omitempty"`

	// Deals cut for this gig, keyed by deal id
	Deals map[string]*Deal `json:"deals,omitempty"`
}

func (g *Gig) IsOpen() bool {
	return g.Status == GigStatusOpen
}
