package geo

import (
	"fmt"
	"math"
	"strings"
)

// EarthRadiusMiles is the mean radius used for all distance calculations.
const EarthRadiusMiles = 3958.8

// DefaultNeighborhoodMiles is the radius of the neighborhood scope.
const DefaultNeighborhoodMiles = 5.0

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within the latitude and longitude ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineMiles returns the great-circle distance between a and b in miles.
func HaversineMiles(a, b Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadius reports whether point is no further than miles from viewer.
func WithinRadius(viewer, point Coordinate, miles float64) bool {
	return HaversineMiles(viewer, point) <= miles
}

// Scope is the audience a post is published to.
type Scope string

const (
	ScopeMe           Scope = "me"
	ScopeNeighborhood Scope = "neighborhood"
	ScopeCity         Scope = "city"
	ScopeState        Scope = "state"
	ScopeNation       Scope = "nation"
	ScopeCivilization Scope = "civilization"
)

var scopes = []Scope{ScopeMe, ScopeNeighborhood, ScopeCity, ScopeState, ScopeNation, ScopeCivilization}

// Scopes lists every scope from the narrowest to the widest.
func Scopes() []Scope {
	out := make([]Scope, len(scopes))
	copy(out, scopes)
	return out
}

// ParseScope accepts a scope name in any letter case.
func ParseScope(s string) (Scope, error) {
	candidate := Scope(strings.ToLower(strings.TrimSpace(s)))
	for _, scope := range scopes {
		if scope == candidate {
			return scope, nil
		}
	}
	return "", fmt.Errorf("unknown location scope %q", s)
}

// Place is the administrative location attached to posts and viewers.
type Place struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
}

// Normalize trims every field and expands US state abbreviations.
func (p Place) Normalize() Place {
	return Place{
		Country: strings.TrimSpace(p.Country),
		State:   NormalizeState(p.State),
		City:    strings.TrimSpace(p.City),
	}
}

// Missing returns the place fields the scope filters on that are empty.
func (p Place) Missing(scope Scope) []string {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}

	switch scope {
	case ScopeCity:
		check("country", p.Country)
		check("state", p.State)
		check("city", p.City)
	case ScopeState:
		check("country", p.Country)
		check("state", p.State)
	case ScopeNation:
		check("country", p.Country)
	}
	return missing
}
