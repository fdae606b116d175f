package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidCurrentCost = errors.New("invalid current cost")
)

// ProposalInput carries the caller-editable proposal fields.

type ProposalInput struct {
	ProductName string
	CurrentCost float64
	Category    string
	Formulation string
}

// IProposalUseCase exposes proposal lifecycle operations. Status is never
// set directly through here; it is owned by the approval workflow engine.

type IProposalUseCase interface {
	Create(ctx context.Context, createdBy string, in ProposalInput) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	ListByCreator(ctx context.Context, userID string) ([]entities.Proposal, error)
	Update(ctx context.Context, id string, in ProposalInput) (entities.Proposal, error)
	Delete(ctx context.Context, id string) error
}

type ProposalUseCase struct {
	repo            interfaces.IProposalRepository
	stakeholderRepo interfaces.IStakeholderRepository
	approvalRepo    interfaces.IApprovalRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	repo interfaces.IProposalRepository,
	stakeholderRepo interfaces.IStakeholderRepository,
	approvalRepo interfaces.IApprovalRepository,
) *ProposalUseCase {
	return &ProposalUseCase{repo: repo, stakeholderRepo: stakeholderRepo, approvalRepo: approvalRepo}
}

func (u *ProposalUseCase) Create(ctx context.Context, createdBy string, in ProposalInput) (entities.Proposal, error) {
	createdBy = strings.TrimSpace(createdBy)
	if createdBy == "" {
		return entities.Proposal{}, ErrInvalidUserID
	}
	if err := validateProposalInput(in); err != nil {
		return entities.Proposal{}, err
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:          uuid.NewString(),
		ProductName: strings.TrimSpace(in.ProductName),
		CurrentCost: in.CurrentCost,
		Category:    strings.TrimSpace(in.Category),
		Formulation: in.Formulation,
		Status:      entities.ProposalStatusDraft,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, p)
}

func (u *ProposalUseCase) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (u *ProposalUseCase) ListByCreator(ctx context.Context, userID string) ([]entities.Proposal, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByCreator(ctx, userID)
}

func (u *ProposalUseCase) Update(ctx context.Context, id string, in ProposalInput) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	if err := validateProposalInput(in); err != nil {
		return entities.Proposal{}, err
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if current.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	current.ProductName = strings.TrimSpace(in.ProductName)
	current.CurrentCost = in.CurrentCost
	current.Category = strings.TrimSpace(in.Category)
	current.Formulation = in.Formulation
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Proposal{}, err
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}

// Delete removes the proposal and cascades to its stakeholder and approval
// records.
func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProposalID
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.ID == "" {
		return ErrProposalNotFound
	}

	if err := u.stakeholderRepo.DeleteByProposal(ctx, id); err != nil {
		return err
	}
	if err := u.approvalRepo.DeleteByProposal(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func validateProposalInput(in ProposalInput) error {
	if strings.TrimSpace(in.ProductName) == "" {
		return ErrInvalidProductName
	}
	if in.CurrentCost <= 0 {
		return ErrInvalidCurrentCost
	}
	return nil
}
