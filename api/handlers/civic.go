package handlers

import (
	"net/http"

	services "github.com/forum-civic/forum-services/api/services"
)

// @Summary List recent bills
// @Tags civic
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.BillResponse
// @Failure 502 {object} models.Response
// @Router /civic/bills [get]
func GetBills(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetBillsService(w, r)
	}
}

// @Summary List congressional committees
// @Tags civic
// @Produce json
// @Security BearerAuth
// @Param chamber query string false "Chamber" Enums(house, senate)
// @Success 200 {object} models.CommitteeResponse
// @Failure 400 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /civic/committees [get]
func GetCommittees(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetCommitteesService(w, r)
	}
}

// @Summary Look up representatives for an address
// @Tags civic
// @Produce json
// @Security BearerAuth
// @Param address query string true "Street address"
// @Success 200 {object} models.RepresentativesResponse
// @Failure 400 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /civic/representatives [get]
func GetRepresentatives(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetRepresentativesService(w, r)
	}
}

// @Summary List PACs by net contributions
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page, starting at 1"
// @Success 200 {object} models.PACResponse
// @Failure 400 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /finance/pacs [get]
func GetPACs(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetPACsService(w, r)
	}
}

// @Summary List a committee's disbursements
// @Description Pass last_index and last_disbursement_date from the previous page's pagination.last_indexes to continue.
// @Tags finance
// @Produce json
// @Security BearerAuth
// @Param committee-id path string true "FEC committee ID"
// @Param last_index query string false "Cursor index"
// @Param last_disbursement_date query string false "Cursor date"
// @Success 200 {object} models.DisbursementResponse
// @Failure 502 {object} models.Response
// @Router /finance/pacs/{committee-id}/disbursements [get]
func GetDisbursements(svc *services.Service) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		svc.GetDisbursementsService(w, r)
	}
}
