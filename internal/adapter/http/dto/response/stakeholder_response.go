package response

import (
	"time"

	"reform_flow/internal/domain/entities"
)

type StakeholderResponse struct {
	ID          string     `json:"id"`
	ProposalID  string     `json:"proposal_id"`
	UserID      string     `json:"user_id"`
	Email       string     `json:"email"`
	Status      string     `json:"status"`
	Comments    string     `json:"comments,omitempty"`
	InvitedAt   time.Time  `json:"invited_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

func FromStakeholder(s entities.Stakeholder) StakeholderResponse {
	return StakeholderResponse{
		ID:          s.ID,
		ProposalID:  s.ProposalID,
		UserID:      s.UserID,
		Email:       s.Email,
		Status:      string(s.Status),
		Comments:    s.Comments,
		InvitedAt:   s.InvitedAt,
		RespondedAt: s.RespondedAt,
	}
}

func FromStakeholders(ss []entities.Stakeholder) []StakeholderResponse {
	out := make([]StakeholderResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromStakeholder(s))
	}
	return out
}
