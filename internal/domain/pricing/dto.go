package pricing

// EstimateRequest is the body of POST /api/estimate.
type EstimateRequest struct {
	Details ClientDetails `json:"details"`
	Display DisplayMode   `json:"display" validate:"omitempty,oneof=year month"`
	// LinearShareholders switches the business fee to the per-shareholder formula.
	LinearShareholders bool `json:"linearShareholders"`
}

type EstimateResponse struct {
	Estimate     Estimate     `json:"estimate"`
	ICPScore     int          `json:"icpScore"`
	LeadCategory LeadCategory `json:"leadCategory"`
	Display      PriceDisplay `json:"display"`
	Info         Info         `json:"info"`
}

// NewEstimateResponse bundles a quote with its rendering.
func NewEstimateResponse(q Quote, mode DisplayMode) EstimateResponse {
	return EstimateResponse{
		Estimate:     q.Estimate,
		ICPScore:     q.ICPScore,
		LeadCategory: q.LeadCategory,
		Display:      Display(q.Estimate, mode),
		Info:         CategoryInfo(q.LeadCategory),
	}
}
