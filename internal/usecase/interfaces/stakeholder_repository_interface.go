package interfaces

import (
	"context"
	"time"

	"reform_flow/internal/domain/entities"
)

// IStakeholderRepository abstracts DynamoDB persistence for Stakeholder.
//
// The (proposalID, userID) uniqueness invariant is enforced by the storage
// key, so Create fails for a duplicate invitation.

type IStakeholderRepository interface {
	Create(ctx context.Context, s entities.Stakeholder) (entities.Stakeholder, error)
	GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Stakeholder, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error)
	ListAcceptedByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error)
	UpdateStatus(ctx context.Context, id string, status entities.StakeholderStatus, comments string, respondedAt time.Time) (entities.Stakeholder, error)
	DeleteByProposal(ctx context.Context, proposalID string) error
}
