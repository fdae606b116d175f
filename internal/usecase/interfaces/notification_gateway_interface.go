package interfaces

import (
	"context"

	"reform_flow/internal/domain/entities"
)

// INotificationGateway abstracts outbound email delivery (invitations and
// status-change notices).
//
// Delivery failures must not fail the triggering workflow operation; callers
// log and continue.

type INotificationGateway interface {
	SendInvitation(ctx context.Context, to string, proposal entities.Proposal) error
	SendStatusChange(ctx context.Context, to string, proposal entities.Proposal, change entities.StatusChange) error
}
