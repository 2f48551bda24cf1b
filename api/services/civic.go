package services

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/forum-civic/forum-services/internal/govdata"
	"github.com/forum-civic/forum-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// writeUpstreamError reports a failed third-party API call. Upstream HTTP
// errors become 502 with the upstream status as error code.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	var apiErr *govdata.APIError
	if errors.As(err, &apiErr) {
		logger.Error().Err(err).Int("upstream_status", apiErr.Status).Msg("Upstream API call failed")
		WriteResponse(w, http.StatusBadGateway, models.ErrorResponse(strconv.Itoa(apiErr.Status), apiErr.Message))
		return
	}

	logger.Error().Err(err).Msg("Upstream API call failed")
	HandleErrResponse(w, http.StatusBadGateway, err)
}

// GetBillsService lists recent bills.
func (svc *Service) GetBillsService(w http.ResponseWriter, r *http.Request) {

	resp, err := svc.Congress.GetBills(r.Context())
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, resp)
}

// GetCommitteesService lists committees, optionally of one chamber.
func (svc *Service) GetCommitteesService(w http.ResponseWriter, r *http.Request) {

	chamber := strings.ToLower(r.URL.Query().Get("chamber"))
	if chamber != "" && chamber != "house" && chamber != "senate" {
		HandleErrResponse(w, http.StatusBadRequest, fmt.Errorf("unknown chamber %q", chamber))
		return
	}

	resp, err := svc.Congress.GetCommittees(r.Context(), chamber)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, resp)
}

// GetRepresentativesService looks up the representatives for an address and
// groups them by level of government.
func (svc *Service) GetRepresentativesService(w http.ResponseWriter, r *http.Request) {

	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		HandleErrResponse(w, http.StatusBadRequest, govdata.ErrEmptyAddress)
		return
	}

	info, err := svc.Civic.GetRepresentatives(r.Context(), address)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	govdata.AttachOffices(info)
	WriteResponse(w, http.StatusOK, models.RepresentativesResponse{
		CivicInfo: *info,
		ByLevel:   govdata.CategorizeOfficials(info),
	})
}

// GetPACsService returns one page of PAC totals.
func (svc *Service) GetPACsService(w http.ResponseWriter, r *http.Request) {

	page := 1
	if p := r.URL.Query().Get("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			HandleErrResponse(w, http.StatusBadRequest, errors.New("page must be a positive integer"))
			return
		}
		page = n
	}

	resp, err := svc.FEC.GetPACs(r.Context(), page)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, resp)
}

// GetDisbursementsService lists a committee's disbursements. The last_index
// and last_disbursement_date query parameters continue a previous listing.
func (svc *Service) GetDisbursementsService(w http.ResponseWriter, r *http.Request) {

	committeeID := mux.Vars(r)["committee-id"]
	if committeeID == "" {
		HandleErrResponse(w, http.StatusBadRequest, govdata.ErrEmptyCommitteeID)
		return
	}

	var cursor *models.DisbursementCursor
	query := r.URL.Query()
	if lastIndex := query.Get("last_index"); lastIndex != "" {
		cursor = &models.DisbursementCursor{
			LastIndex:            lastIndex,
			LastDisbursementDate: query.Get("last_disbursement_date"),
		}
	}

	resp, err := svc.FEC.GetDisbursements(r.Context(), committeeID, cursor)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, resp)
}
