package entities

// ApprovalSummary is the derived aggregate of a proposal's approval state.
// It is computed on demand and never persisted.
//
// PendingCount is totalStakeholders minus the total number of approval
// records, without clamping: it can go negative when approval records exist
// for users who are no longer ACCEPTED stakeholders (e.g. a reviewer who
// approved and later declined). Callers must tolerate that.

type ApprovalSummary struct {
	TotalStakeholders     int `json:"total_stakeholders"`
	ApprovedCount         int `json:"approved_count"`
	RejectedCount         int `json:"rejected_count"`
	ChangesRequestedCount int `json:"changes_requested_count"`
	PendingCount          int `json:"pending_count"`
}

// StatusChange describes the outcome of a proposal status synchronization.

type StatusChange struct {
	OldStatus ProposalStatus  `json:"old_status"`
	NewStatus ProposalStatus  `json:"new_status"`
	Changed   bool            `json:"changed"`
	Reason    string          `json:"reason"`
	Summary   ApprovalSummary `json:"summary"`
}
