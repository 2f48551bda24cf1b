package models

import "strings"

// Bills and committees as returned by the congress.gov API.

type LatestAction struct {
	ActionDate string `json:"actionDate"`
	Text       string `json:"text"`
}

type Bill struct {
	Congress                int          `json:"congress"`
	LatestAction            LatestAction `json:"latestAction"`
	Number                  string       `json:"number"`
	OriginChamber           string       `json:"originChamber"`
	OriginChamberCode       string       `json:"originChamberCode"`
	Title                   string       `json:"title"`
	Type                    string       `json:"type"`
	UpdateDate              string       `json:"updateDate"`
	UpdateDateIncludingText string       `json:"updateDateIncludingText"`
	URL                     string       `json:"url"`
}

type BillResponse struct {
	Bills []Bill `json:"bills"`
}

type CommitteeParent struct {
	Name       string `json:"name"`
	SystemCode string `json:"systemCode,omitempty"`
	URL        string `json:"url,omitempty"`
}

type Subcommittee struct {
	Name       string `json:"name"`
	SystemCode string `json:"systemCode"`
	URL        string `json:"url"`
}

type Committee struct {
	Chamber           string           `json:"chamber"`
	CommitteeTypeCode string           `json:"committeeTypeCode"`
	Name              string           `json:"name"`
	Parent            *CommitteeParent `json:"parent,omitempty"`
	Subcommittees     []Subcommittee   `json:"subcommittees,omitempty"`
	SystemCode        string           `json:"systemCode"`
	URL               string           `json:"url"`
}

type CommitteeResponse struct {
	Committees []Committee `json:"committees"`
}

// Representatives as returned by the Google Civic Information API.

type OfficeLevel string

const (
	LevelCountry             OfficeLevel = "country"
	LevelAdministrativeArea1 OfficeLevel = "administrativeArea1"
	LevelAdministrativeArea2 OfficeLevel = "administrativeArea2"
	LevelLocality            OfficeLevel = "locality"
)

// OfficeLevels lists the levels officials are grouped under, federal first.
var OfficeLevels = []OfficeLevel{LevelCountry, LevelAdministrativeArea1, LevelAdministrativeArea2, LevelLocality}

type Address struct {
	Line1 string `json:"line1"`
	City  string `json:"city"`
	State string `json:"state"`
	Zip   string `json:"zip"`
}

// Formatted renders the address on a single line, skipping empty parts.
func (a Address) Formatted() string {
	var parts []string
	for _, p := range []string{a.Line1, a.City, strings.TrimSpace(a.State + " " + a.Zip)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

type Division struct {
	Name          string `json:"name"`
	OfficeIndices []int  `json:"officeIndices,omitempty"`
}

type Office struct {
	Name            string        `json:"name"`
	DivisionID      string        `json:"divisionId"`
	Levels          []OfficeLevel `json:"levels,omitempty"`
	Roles           []string      `json:"roles,omitempty"`
	OfficialIndices []int         `json:"officialIndices"`
}

type Channel struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

type Official struct {
	Name     string    `json:"name"`
	Address  []Address `json:"address,omitempty"`
	Party    string    `json:"party,omitempty"`
	Phones   []string  `json:"phones,omitempty"`
	URLs     []string  `json:"urls,omitempty"`
	PhotoURL string    `json:"photoUrl,omitempty"`
	Channels []Channel `json:"channels,omitempty"`

	// Office is the name of the first office the official holds.
	Office string `json:"office,omitempty"`
}

type CivicInfo struct {
	NormalizedInput Address             `json:"normalizedInput"`
	Kind            string              `json:"kind"`
	Divisions       map[string]Division `json:"divisions"`
	Offices         []Office            `json:"offices"`
	Officials       []Official          `json:"officials"`
}

// RepresentativesResponse adds the per-level grouping to the raw lookup.
type RepresentativesResponse struct {
	CivicInfo
	ByLevel map[OfficeLevel][]Official `json:"byLevel"`
}
