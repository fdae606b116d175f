package request

import "strings"

// ProposalRequest is the payload for proposal creation and update.
type ProposalRequest struct {
	ProductName string  `json:"product_name" binding:"required"`
	CurrentCost float64 `json:"current_cost" binding:"required"`
	Category    string  `json:"category"`
	Formulation string  `json:"formulation"`
}

func (r ProposalRequest) ResolveProductName() string {
	return strings.TrimSpace(r.ProductName)
}
