package govdata

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/forum-civic/forum-services/models"
)

var ErrEmptyAddress = errors.New("address is required")

// CivicInfoClient looks up elected representatives by address.
type CivicInfoClient struct {
	*Client
}

func NewCivicInfoClient(baseURL, apiKey string) *CivicInfoClient {
	return &CivicInfoClient{Client: newClient(baseURL, apiKey, "key")}
}

func (c *CivicInfoClient) GetRepresentatives(ctx context.Context, address string) (*models.CivicInfo, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrEmptyAddress
	}

	var info models.CivicInfo
	if err := c.getJSON(ctx, "/representatives", url.Values{"address": {address}}, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// CategorizeOfficials groups officials by the first level of the office they
// hold. Offices without a known level and out of range indices are ignored.
func CategorizeOfficials(info *models.CivicInfo) map[models.OfficeLevel][]models.Official {
	byLevel := make(map[models.OfficeLevel][]models.Official, len(models.OfficeLevels))
	for _, level := range models.OfficeLevels {
		byLevel[level] = []models.Official{}
	}
	if info == nil {
		return byLevel
	}

	for _, office := range info.Offices {
		if len(office.Levels) == 0 {
			continue
		}
		officials, ok := byLevel[office.Levels[0]]
		if !ok {
			continue
		}
		for _, idx := range office.OfficialIndices {
			if idx < 0 || idx >= len(info.Officials) {
				continue
			}
			officials = append(officials, info.Officials[idx])
		}
		byLevel[office.Levels[0]] = officials
	}
	return byLevel
}

// AttachOffices sets the Office of every official that holds one.
func AttachOffices(info *models.CivicInfo) {
	if info == nil {
		return
	}
	for i := range info.Officials {
		if office := OfficeFor(info, i); office != nil {
			info.Officials[i].Office = office.Name
		}
	}
}

// OfficeFor returns the first office held by the official at index, or nil.
func OfficeFor(info *models.CivicInfo, index int) *models.Office {
	if info == nil {
		return nil
	}
	for i := range info.Offices {
		for _, idx := range info.Offices[i].OfficialIndices {
			if idx == index {
				return &info.Offices[i]
			}
		}
	}
	return nil
}
