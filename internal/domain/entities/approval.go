package entities

import "time"

// ApprovalStatus represents one stakeholder's decision on a proposal.

type ApprovalStatus string

const (
	ApprovalStatusPending          ApprovalStatus = "PENDING"
	ApprovalStatusApproved         ApprovalStatus = "APPROVED"
	ApprovalStatusChangesRequested ApprovalStatus = "CHANGES_REQUESTED"
	ApprovalStatusRejected         ApprovalStatus = "REJECTED"
)

// Approval is a stakeholder's recorded decision, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id ("{proposal_id}#{user_id}", one mutable record per pair)
//   - GSI1 (proposal_id-index): proposal_id
//
// Repeated submissions from the same user update this record in place
// rather than inserting duplicates (get-or-create semantics).

// ApprovalID derives the storage key for a (proposal, user) approval record.
func ApprovalID(proposalID, userID string) string {
	return proposalID + "#" + userID
}

type Approval struct {
	ID         string         `json:"id"`
	ProposalID string         `json:"proposal_id"`
	UserID     string         `json:"user_id"`
	Status     ApprovalStatus `json:"status"`
	Comments   string         `json:"comments,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
