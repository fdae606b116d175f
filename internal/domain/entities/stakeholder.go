package entities

import "time"

// StakeholderStatus represents the state of a review invitation.

type StakeholderStatus string

const (
	StakeholderStatusPending  StakeholderStatus = "PENDING"
	StakeholderStatusAccepted StakeholderStatus = "ACCEPTED"
	StakeholderStatusDeclined StakeholderStatus = "DECLINED"
)

// Stakeholder is an invitation of a user to review a specific proposal.
//
// Storage model (DynamoDB):
//   - PK: id ("{proposal_id}#{user_id}", which enforces one invitation per
//     proposal/user pair)
//   - GSI1 (proposal_id-index): proposal_id
//
// Only ACCEPTED stakeholders count toward the approval denominator.

// StakeholderID derives the storage key for a (proposal, user) invitation.
func StakeholderID(proposalID, userID string) string {
	return proposalID + "#" + userID
}

type Stakeholder struct {
	ID          string            `json:"id"`
	ProposalID  string            `json:"proposal_id"`
	UserID      string            `json:"user_id"`
	Email       string            `json:"email"`
	Status      StakeholderStatus `json:"status"`
	Comments    string            `json:"comments,omitempty"`
	InvitedAt   time.Time         `json:"invited_at"`
	RespondedAt *time.Time        `json:"responded_at,omitempty"`
}
