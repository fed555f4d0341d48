package geo

import "strings"

// Record is a profile location parsed out of the app's freeform
// "City, Region" field. Both parts are lowercased and trimmed.
type Record struct {
	City   string
	Region string
}

// Cities treated as a single global-influencer equivalence class: two
// profiles in different hubs still score above a plain mismatch.
var globalHubs = map[string]struct{}{
	"london":    {},
	"paris":     {},
	"milan":     {},
	"tokyo":     {},
	"dubai":     {},
	"barcelona": {},
}

// Parse splits "City, Region" on the first comma. A missing comma
// degrades to a city-only record rather than erroring.
func Parse(loc string) Record {
	var r Record
	loc = strings.ToLower(strings.TrimSpace(loc))
	if loc == "" {
		return r
	}

	if idx := strings.Index(loc, ","); idx >= 0 {
		r.City = strings.TrimSpace(loc[:idx])
		r.Region = strings.TrimSpace(loc[idx+1:])
	} else {
		r.City = loc
	}
	return r
}

func (r Record) IsGlobalHub() bool {
	_, ok := globalHubs[r.City]
	return ok
}

// Score rates how close two profile locations are, 0-100:
//
//	no target          → 50 (a listing without a location is not a signal)
//	same city          → 100
//	same region/state  → 70
//	both global hubs   → 60
//	otherwise          → 40
func Score(subject, target string) float64 {
	if strings.TrimSpace(target) == "" {
		return 50
	}

	s, t := Parse(subject), Parse(target)

	if s.City != "" && s.City == t.City {
		return 100
	}
	if s.Region != "" && s.Region == t.Region {
		return 70
	}
	if s.IsGlobalHub() && t.IsGlobalHub() {
		return 60
	}
	return 40
}
