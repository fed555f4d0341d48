package common

// Sponsor carries the coarser brand-side profile. Industry may hold
// several "&"-separated sub-industries ("Sports & Fitness").
type Sponsor struct {
	Id string `json:"id"`

	Name     string `json:"name,omitempty"`
	Industry string `json:"industry,omitempty"`

	// Freeform "City, Region"
	Location string `json:"location,omitempty"`

	// Default spend per sponsorship, used when a match request does not
	// supply its own budget
	Budget float64 `json:"budget,omitempty"`
}
