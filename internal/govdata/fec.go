package govdata

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/forum-civic/forum-services/models"
)

const (
	pacsPerPage          = 20
	disbursementsPerPage = 50
)

var ErrEmptyCommitteeID = errors.New("committee id is required")

// FECClient browses PAC totals and disbursements on api.open.fec.gov.
type FECClient struct {
	*Client
	Cycle int
}

func NewFECClient(baseURL, apiKey string, cycle int) *FECClient {
	return &FECClient{Client: newClient(baseURL, apiKey, "api_key"), Cycle: cycle}
}

// GetPACs returns one page of PACs ordered by net contributions. Pages start at 1.
func (c *FECClient) GetPACs(ctx context.Context, page int) (*models.PACResponse, error) {
	if page < 1 {
		page = 1
	}

	params := url.Values{
		"page":              {strconv.Itoa(page)},
		"per_page":          {strconv.Itoa(pacsPerPage)},
		"cycle":             {strconv.Itoa(c.Cycle)},
		"organization_type": {"C"},
		"sort":              {"-net_contributions"},
		"sort_hide_null":    {"false"},
		"sort_null_only":    {"false"},
		"sort_nulls_last":   {"false"},
	}

	var resp models.PACResponse
	if err := c.getJSON(ctx, "/totals/pac-party/", params, &resp); err != nil {
		return nil, err
	}
	for i := range resp.Results {
		resp.Results[i].Treasurer = resp.Results[i].TreasurerDisplayName()
	}
	return &resp, nil
}

// GetDisbursements returns a committee's disbursements, newest first. A nil
// cursor starts at the beginning; otherwise pass the last_indexes of the
// previous page.
func (c *FECClient) GetDisbursements(ctx context.Context, committeeID string, cursor *models.DisbursementCursor) (*models.DisbursementResponse, error) {
	if committeeID == "" {
		return nil, ErrEmptyCommitteeID
	}

	params := url.Values{
		"committee_id":   {committeeID},
		"per_page":       {strconv.Itoa(disbursementsPerPage)},
		"sort":           {"-disbursement_date"},
		"sort_hide_null": {"false"},
		"sort_null_only": {"false"},
	}
	if cursor != nil && cursor.LastIndex != "" {
		params.Set("last_index", cursor.LastIndex)
		if cursor.LastDisbursementDate != "" {
			params.Set("last_disbursement_date", cursor.LastDisbursementDate)
		}
	}

	var resp models.DisbursementResponse
	if err := c.getJSON(ctx, "/schedules/schedule_b/", params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
