package response

import (
	"time"

	"reform_flow/internal/domain/entities"
)

type ApprovalResponse struct {
	ID         string    `json:"id"`
	ProposalID string    `json:"proposal_id"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	Comments   string    `json:"comments,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromApproval(a entities.Approval) ApprovalResponse {
	return ApprovalResponse{
		ID:         a.ID,
		ProposalID: a.ProposalID,
		UserID:     a.UserID,
		Status:     string(a.Status),
		Comments:   a.Comments,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func FromApprovals(as []entities.Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromApproval(a))
	}
	return out
}

// ApprovalDecisionResponse couples the recorded decision with the status
// synchronization it triggered.
type ApprovalDecisionResponse struct {
	Approval     ApprovalResponse     `json:"approval"`
	StatusChange StatusChangeResponse `json:"status_change"`
}

func FromApprovalDecision(a entities.Approval, change entities.StatusChange) ApprovalDecisionResponse {
	return ApprovalDecisionResponse{
		Approval:     FromApproval(a),
		StatusChange: FromStatusChange(change),
	}
}
