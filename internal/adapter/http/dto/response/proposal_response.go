package response

import (
	"time"

	"reform_flow/internal/domain/entities"
)

type ProposalResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	CurrentCost float64   `json:"current_cost"`
	Category    string    `json:"category"`
	Formulation string    `json:"formulation"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		CurrentCost: p.CurrentCost,
		Category:    p.Category,
		Formulation: p.Formulation,
		Status:      string(p.Status),
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProposals(ps []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProposal(p))
	}
	return out
}
