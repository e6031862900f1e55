package submissions

import "cardrequest-backend/internal/money"

// ValidateResponse is returned by the validate endpoint.
type ValidateResponse struct {
	Valid      bool              `json:"valid"`
	Violations map[string]string `json:"violations"`
}

// SubmitResponse is returned when a submission is stored.
type SubmitResponse struct {
	ID              int64        `json:"id"`
	Protocolo       string       `json:"protocolo"`
	Receipt         string       `json:"receipt"`
	ReceiptFileName string       `json:"receiptFileName"`
	Eligibility     *Eligibility `json:"eligibility,omitempty"`
}

// EligibilityResponse reports the advisory heuristic for a limit/revenue pair.
type EligibilityResponse struct {
	Applicable bool    `json:"applicable"`
	Level      string  `json:"level,omitempty"`
	Ratio      float64 `json:"ratio,omitempty"`
	Message    string  `json:"message,omitempty"`
}

// SummaryResponse is one row of the admin listing, with the limit formatted as money.
type SummaryResponse struct {
	Protocolo        int64  `json:"Protocolo"`
	CriadoEm         string `json:"CriadoEm"`
	RazaoSocial      string `json:"RazaoSocial"`
	CNPJ             string `json:"CNPJ"`
	Contato          string `json:"Contato"`
	Email            string `json:"Email"`
	LimitePretendido string `json:"LimitePretendido"`
	Status           string `json:"Status"`
}

func toSubmitResponse(r Result) SubmitResponse {
	return SubmitResponse{
		ID:              r.Submission.ID,
		Protocolo:       r.Protocol,
		Receipt:         string(r.Receipt),
		ReceiptFileName: r.ReceiptFileName,
		Eligibility:     r.Eligibility,
	}
}

func toSummaryResponses(items []Summary) []SummaryResponse {
	out := make([]SummaryResponse, 0, len(items))
	for _, s := range items {
		out = append(out, SummaryResponse{
			Protocolo:        s.Protocolo,
			CriadoEm:         s.CriadoEm,
			RazaoSocial:      s.RazaoSocial,
			CNPJ:             s.CNPJ,
			Contato:          s.Contato,
			Email:            s.Email,
			LimitePretendido: money.FormatOptional(s.LimitePretendido),
			Status:           s.Status,
		})
	}
	return out
}
