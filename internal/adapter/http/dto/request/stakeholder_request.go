package request

import "strings"

// StakeholderInviteRequest is the payload to invite a user as a reviewer.
type StakeholderInviteRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Email  string `json:"email" binding:"required"`
}

// StakeholderRespondRequest is the payload to answer an invitation.
//
// Action is "accept" or "decline" (case-insensitive).
type StakeholderRespondRequest struct {
	Action   string `json:"action" binding:"required"`
	Comments string `json:"comments"`
}

func (r StakeholderRespondRequest) ResolveAccept() (accept, ok bool) {
	switch strings.ToLower(strings.TrimSpace(r.Action)) {
	case "accept":
		return true, true
	case "decline":
		return false, true
	default:
		return false, false
	}
}
