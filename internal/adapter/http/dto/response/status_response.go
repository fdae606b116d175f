package response

import "reform_flow/internal/domain/entities"

type ApprovalSummaryResponse struct {
	TotalStakeholders     int `json:"total_stakeholders"`
	ApprovedCount         int `json:"approved_count"`
	RejectedCount         int `json:"rejected_count"`
	ChangesRequestedCount int `json:"changes_requested_count"`
	PendingCount          int `json:"pending_count"`
}

func FromApprovalSummary(s entities.ApprovalSummary) ApprovalSummaryResponse {
	return ApprovalSummaryResponse{
		TotalStakeholders:     s.TotalStakeholders,
		ApprovedCount:         s.ApprovedCount,
		RejectedCount:         s.RejectedCount,
		ChangesRequestedCount: s.ChangesRequestedCount,
		PendingCount:          s.PendingCount,
	}
}

// ProposalSummaryResponse is the read-only aggregate view: the counts plus
// the status they resolve to.
type ProposalSummaryResponse struct {
	ProposalID string                  `json:"proposal_id"`
	Status     string                  `json:"status"`
	Reason     string                  `json:"reason"`
	Summary    ApprovalSummaryResponse `json:"summary"`
}

type StatusChangeResponse struct {
	OldStatus string                  `json:"old_status"`
	NewStatus string                  `json:"new_status"`
	Changed   bool                    `json:"changed"`
	Reason    string                  `json:"reason"`
	Summary   ApprovalSummaryResponse `json:"summary"`
}

func FromStatusChange(c entities.StatusChange) StatusChangeResponse {
	return StatusChangeResponse{
		OldStatus: string(c.OldStatus),
		NewStatus: string(c.NewStatus),
		Changed:   c.Changed,
		Reason:    c.Reason,
		Summary:   FromApprovalSummary(c.Summary),
	}
}
