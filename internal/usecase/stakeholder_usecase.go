package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail              = errors.New("invalid stakeholder email")
	ErrStakeholderNotFound       = errors.New("stakeholder not found")
	ErrStakeholderAlreadyInvited = errors.New("stakeholder already invited")
	ErrInvitationAlreadyAnswered = errors.New("invitation already answered")
)

// IStakeholderUseCase exposes invitation operations. Responding to an
// invitation changes the approval denominator, so Respond synchronizes the
// proposal status afterwards.

type IStakeholderUseCase interface {
	Invite(ctx context.Context, proposalID, userID, email string) (entities.Stakeholder, error)
	Respond(ctx context.Context, proposalID, userID string, accept bool, comments string) (entities.Stakeholder, entities.StatusChange, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error)
	GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Stakeholder, error)
}

type StakeholderUseCase struct {
	repo         interfaces.IStakeholderRepository
	proposalRepo interfaces.IProposalRepository
	workflow     IApprovalUseCase
	notifier     interfaces.INotificationGateway
}

var _ IStakeholderUseCase = (*StakeholderUseCase)(nil)

func NewStakeholderUseCase(
	repo interfaces.IStakeholderRepository,
	proposalRepo interfaces.IProposalRepository,
	workflow IApprovalUseCase,
	notifier interfaces.INotificationGateway,
) *StakeholderUseCase {
	return &StakeholderUseCase{repo: repo, proposalRepo: proposalRepo, workflow: workflow, notifier: notifier}
}

// Invite creates a PENDING invitation for the user and dispatches the
// invitation email. Delivery failures are logged, not returned: the
// invitation is valid whether or not the email made it out.
func (u *StakeholderUseCase) Invite(ctx context.Context, proposalID, userID, email string) (entities.Stakeholder, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Stakeholder{}, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Stakeholder{}, ErrInvalidUserID
	}
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Stakeholder{}, ErrInvalidEmail
	}

	proposal, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.Stakeholder{}, err
	}
	if proposal.ID == "" {
		return entities.Stakeholder{}, ErrProposalNotFound
	}

	if existing, err := u.repo.GetByProposalAndUser(ctx, proposalID, userID); err != nil {
		return entities.Stakeholder{}, err
	} else if existing.ID != "" {
		return entities.Stakeholder{}, ErrStakeholderAlreadyInvited
	}

	s := entities.Stakeholder{
		ID:         entities.StakeholderID(proposalID, userID),
		ProposalID: proposalID,
		UserID:     userID,
		Email:      email,
		Status:     entities.StakeholderStatusPending,
		InvitedAt:  time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Stakeholder{}, err
	}

	if u.notifier != nil {
		if err := u.notifier.SendInvitation(ctx, created.Email, proposal); err != nil {
			log.Printf("[stakeholder][usecase] invitation email failed proposal_id=%s user_id=%s err=%v", proposalID, userID, err)
		}
	}
	log.Printf("[stakeholder][usecase] invited proposal_id=%s user_id=%s", proposalID, userID)
	return created, nil
}

// Respond records an ACCEPTED or DECLINED answer to a PENDING invitation and
// synchronizes the proposal status, since the set of accepted stakeholders
// just changed.
func (u *StakeholderUseCase) Respond(ctx context.Context, proposalID, userID string, accept bool, comments string) (entities.Stakeholder, entities.StatusChange, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Stakeholder{}, entities.StatusChange{}, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Stakeholder{}, entities.StatusChange{}, ErrInvalidUserID
	}

	existing, err := u.repo.GetByProposalAndUser(ctx, proposalID, userID)
	if err != nil {
		return entities.Stakeholder{}, entities.StatusChange{}, err
	}
	if existing.ID == "" {
		return entities.Stakeholder{}, entities.StatusChange{}, ErrStakeholderNotFound
	}
	if existing.Status != entities.StakeholderStatusPending {
		return entities.Stakeholder{}, entities.StatusChange{}, ErrInvitationAlreadyAnswered
	}

	status := entities.StakeholderStatusDeclined
	if accept {
		status = entities.StakeholderStatusAccepted
	}

	updated, err := u.repo.UpdateStatus(ctx, existing.ID, status, comments, time.Now().UTC())
	if err != nil {
		return entities.Stakeholder{}, entities.StatusChange{}, err
	}
	if updated.ID == "" {
		return entities.Stakeholder{}, entities.StatusChange{}, ErrStakeholderNotFound
	}

	change, err := u.workflow.SynchronizeProposalStatus(ctx, proposalID)
	if err != nil {
		return entities.Stakeholder{}, entities.StatusChange{}, err
	}
	log.Printf("[stakeholder][usecase] responded proposal_id=%s user_id=%s status=%s status_changed=%t", proposalID, userID, status, change.Changed)
	return updated, change, nil
}

func (u *StakeholderUseCase) ListByProposal(ctx context.Context, proposalID string) ([]entities.Stakeholder, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	return u.repo.ListByProposal(ctx, proposalID)
}

func (u *StakeholderUseCase) GetByProposalAndUser(ctx context.Context, proposalID, userID string) (entities.Stakeholder, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Stakeholder{}, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Stakeholder{}, ErrInvalidUserID
	}

	s, err := u.repo.GetByProposalAndUser(ctx, proposalID, userID)
	if err != nil {
		return entities.Stakeholder{}, err
	}
	if s.ID == "" {
		return entities.Stakeholder{}, ErrStakeholderNotFound
	}
	return s, nil
}
