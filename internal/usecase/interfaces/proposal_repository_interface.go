package interfaces

import (
	"context"

	"reform_flow/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Not-found is signalled by a zero-value entity with empty ID, not an error.
// UpdateStatus is a single-field update so status synchronization never
// clobbers concurrent edits to the proposal body.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByCreator(ctx context.Context, userID string) ([]entities.Proposal, error)
	Update(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}
