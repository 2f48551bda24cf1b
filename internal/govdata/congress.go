package govdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/forum-civic/forum-services/models"
)

// CongressClient reads bills and committees from api.congress.gov.
type CongressClient struct {
	*Client
}

func NewCongressClient(baseURL, apiKey string) *CongressClient {
	return &CongressClient{Client: newClient(baseURL, apiKey, "api_key")}
}

// GetBills returns the most recently updated bills.
func (c *CongressClient) GetBills(ctx context.Context) (*models.BillResponse, error) {
	var resp models.BillResponse
	if err := c.getJSON(ctx, "/bill", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetCommittees lists committees of one chamber ("house" or "senate"), or of
// both when chamber is empty.
func (c *CongressClient) GetCommittees(ctx context.Context, chamber string) (*models.CommitteeResponse, error) {
	path := "/committee"
	switch strings.ToLower(chamber) {
	case "":
	case "house", "senate":
		path += "/" + strings.ToLower(chamber)
	default:
		return nil, fmt.Errorf("unknown chamber %q", chamber)
	}

	var resp models.CommitteeResponse
	if err := c.getJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
