package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Pagination struct {
	Count        int  `json:"count"`
	IsCountExact bool `json:"is_count_exact"`
	Page         int  `json:"page"`
	Pages        int  `json:"pages"`
	PerPage      int  `json:"per_page"`
}

// PAC is a political action committee's totals for one election cycle.
type PAC struct {
	CommitteeID               string  `json:"committee_id"`
	CommitteeName             string  `json:"committee_name"`
	CashOnHandBeginningPeriod float64 `json:"cash_on_hand_beginning_period"`
	Contributions             float64 `json:"contributions"`
	TreasurerName             string  `json:"treasurer_name"`
	IndividualContributions   float64 `json:"individual_contributions"`
	Cycle                     int     `json:"cycle"`
	Receipts                  float64 `json:"receipts"`
	Disbursements             float64 `json:"disbursements"`
	CashOnHandEndPeriod       float64 `json:"last_cash_on_hand_end_period"`
	NetContributions          float64 `json:"net_contributions"`

	// Treasurer is filled from TreasurerName for display.
	Treasurer string `json:"treasurerDisplayName,omitempty"`
}

// TreasurerDisplayName turns the filed "LAST, FIRST MIDDLE" form into "First Middle Last".
func (p PAC) TreasurerDisplayName() string {
	name := strings.TrimSpace(p.TreasurerName)
	if name == "" {
		return ""
	}

	parts := strings.SplitN(name, ",", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		name = strings.TrimSpace(parts[1]) + " " + strings.TrimSpace(parts[0])
	}

	return cases.Title(language.Und).String(strings.Join(strings.Fields(name), " "))
}

type PACResponse struct {
	Pagination Pagination `json:"pagination"`
	Results    []PAC      `json:"results"`
}

type LastIndexes struct {
	LastIndex            string `json:"last_index"`
	LastDisbursementDate string `json:"last_disbursement_date"`
}

type DisbursementPagination struct {
	Pagination
	LastIndexes *LastIndexes `json:"last_indexes"`
}

type RecipientCommittee struct {
	PartyFull string `json:"party_full"`
}

type Disbursement struct {
	CommitteeID             string              `json:"committee_id"`
	DisbursementAmount      float64             `json:"disbursement_amount"`
	RecipientName           string              `json:"recipient_name"`
	DisbursementDescription string              `json:"disbursement_description"`
	DisbursementDate        string              `json:"disbursement_date"`
	RecipientCommittee      *RecipientCommittee `json:"recipient_committee,omitempty"`
}

type DisbursementResponse struct {
	Pagination DisbursementPagination `json:"pagination"`
	Results    []Disbursement         `json:"results"`
}

// DisbursementCursor resumes a schedule B listing after the last seen record.
type DisbursementCursor struct {
	LastIndex            string
	LastDisbursementDate string
}
