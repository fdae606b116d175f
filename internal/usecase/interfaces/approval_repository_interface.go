package interfaces

import (
	"context"

	"reform_flow/internal/domain/entities"
)

// IApprovalRepository abstracts DynamoDB persistence for Approval.

type IApprovalRepository interface {
	Create(ctx context.Context, a entities.Approval) (entities.Approval, error)
	GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Approval, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.Approval, error)
	UpdateStatus(ctx context.Context, id string, status entities.ApprovalStatus, comments string) (entities.Approval, error)
	DeleteByProposal(ctx context.Context, proposalID string) error
}
