package common

// Deal represents an accepted bid between a sponsor's gig and an
// influencer. Do NOT confuse this with the Gig listing itself.
type Deal struct {
	Id        string `json:"id"`
	GigId     string `json:"gigId"`
	SponsorId string `json:"sponsorId,omitempty"`

	// Influencer this deal has been assigned to
	InfluencerId   string `json:"influencerId,omitempty"`
	InfluencerName string `json:"influencerName,omitempty"`

	// Payout agreed at accept time (the gig price when accepted)
	Price float64 `json:"price,omitempty"`

	Assigned  int32 `json:"assigned,omitempty"`  // Timestamp for when the deal was picked up
	Completed int32 `json:"completed,omitempty"` // Timestamp for when the deal was completed
	Cancelled int32 `json:"cancelled,omitempty"` // Timestamp for when the deal was called off
}

func (d *Deal) IsActive() bool {
	return d.Assigned > 0 && d.Completed == 0 && d.Cancelled == 0
}
