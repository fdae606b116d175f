package entities

import "time"

// ProposalStatus represents the review lifecycle of a reformulation proposal.
//
// Domain notes:
//   - The status field is derived from the aggregate of stakeholder approvals;
//     it is recomputed after every approval-affecting mutation.
//   - A proposal with no accepted stakeholders stays in DRAFT even after
//     invitations were sent.

type ProposalStatus string

const (
	ProposalStatusDraft            ProposalStatus = "DRAFT"
	ProposalStatusPendingApproval  ProposalStatus = "PENDING_APPROVAL"
	ProposalStatusApproved         ProposalStatus = "APPROVED"
	ProposalStatusRejected         ProposalStatus = "REJECTED"
	ProposalStatusChangesRequested ProposalStatus = "CHANGES_REQUESTED"
)

// Proposal is the product reformulation proposal persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CurrentCost is the current per-unit production cost of the product being
// reformulated; it must be positive.

type Proposal struct {
	ID          string         `json:"id"`
	ProductName string         `json:"product_name"`
	CurrentCost float64        `json:"current_cost"`
	Category    string         `json:"category"`
	Formulation string         `json:"formulation"`
	Status      ProposalStatus `json:"status"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
