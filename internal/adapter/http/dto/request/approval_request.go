package request

import (
	"strings"

	"reform_flow/internal/domain/entities"
)

// ApprovalSubmitRequest is the payload to record a stakeholder decision.
type ApprovalSubmitRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

// ResolveStatus maps the wire value to a decision status. Only the three
// decision statuses are accepted; submitting PENDING is not a thing.
func (r ApprovalSubmitRequest) ResolveStatus() (entities.ApprovalStatus, bool) {
	switch entities.ApprovalStatus(strings.ToUpper(strings.TrimSpace(r.Status))) {
	case entities.ApprovalStatusApproved:
		return entities.ApprovalStatusApproved, true
	case entities.ApprovalStatusRejected:
		return entities.ApprovalStatusRejected, true
	case entities.ApprovalStatusChangesRequested:
		return entities.ApprovalStatusChangesRequested, true
	default:
		return "", false
	}
}

// ApprovalCommentsRequest is the optional body of the convenience
// approve/reject/request-changes routes.
type ApprovalCommentsRequest struct {
	Comments string `json:"comments"`
}
