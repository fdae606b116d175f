package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrApprovalNotFound      = errors.New("approval not found")
	ErrInvalidProposalID     = errors.New("invalid proposal id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidApprovalStatus = errors.New("invalid approval status")
	ErrUserNotAuthorized     = errors.New("user is not an accepted stakeholder")
)

// IApprovalUseCase exposes the approval workflow engine:
//   - CalculateApprovalSummary aggregates approval records against the set
//     of accepted stakeholders.
//   - SynchronizeProposalStatus recomputes and persists the proposal status
//     derived from that aggregate.
//   - SubmitApproval (and the Approve/Reject/RequestChanges shortcuts)
//     records a stakeholder decision and then synchronizes.

type IApprovalUseCase interface {
	CalculateApprovalSummary(ctx context.Context, proposalID string) (entities.ApprovalSummary, error)
	SynchronizeProposalStatus(ctx context.Context, proposalID string) (entities.StatusChange, error)
	IsUserAuthorizedToApprove(ctx context.Context, proposalID, userID string) (bool, error)
	GetOrCreateApproval(ctx context.Context, proposalID, userID string) (entities.Approval, error)
	SubmitApproval(ctx context.Context, proposalID, userID string, status entities.ApprovalStatus, comments string) (entities.Approval, entities.StatusChange, error)
	Approve(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error)
	Reject(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error)
	RequestChanges(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error)
	ListByProposal(ctx context.Context, proposalID string) ([]entities.Approval, error)
}

type ApprovalUseCase struct {
	proposalRepo    interfaces.IProposalRepository
	stakeholderRepo interfaces.IStakeholderRepository
	approvalRepo    interfaces.IApprovalRepository
	notifier        interfaces.INotificationGateway
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

func NewApprovalUseCase(
	proposalRepo interfaces.IProposalRepository,
	stakeholderRepo interfaces.IStakeholderRepository,
	approvalRepo interfaces.IApprovalRepository,
	notifier interfaces.INotificationGateway,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		proposalRepo:    proposalRepo,
		stakeholderRepo: stakeholderRepo,
		approvalRepo:    approvalRepo,
		notifier:        notifier,
	}
}

// CalculateApprovalSummary counts approval records per decision against the
// number of accepted stakeholders. PendingCount is left unclamped: approval
// records from users who are no longer accepted stakeholders drive it
// negative, and callers must tolerate that.
func (u *ApprovalUseCase) CalculateApprovalSummary(ctx context.Context, proposalID string) (entities.ApprovalSummary, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.ApprovalSummary{}, ErrInvalidProposalID
	}

	approvals, err := u.approvalRepo.ListByProposal(ctx, proposalID)
	if err != nil {
		return entities.ApprovalSummary{}, err
	}
	accepted, err := u.stakeholderRepo.ListAcceptedByProposal(ctx, proposalID)
	if err != nil {
		return entities.ApprovalSummary{}, err
	}

	summary := entities.ApprovalSummary{
		TotalStakeholders: len(accepted),
		PendingCount:      len(accepted) - len(approvals),
	}
	for _, a := range approvals {
		switch a.Status {
		case entities.ApprovalStatusApproved:
			summary.ApprovedCount++
		case entities.ApprovalStatusRejected:
			summary.RejectedCount++
		case entities.ApprovalStatusChangesRequested:
			summary.ChangesRequestedCount++
		}
	}
	return summary, nil
}

// DetermineStatus maps an approval summary to the proposal status and a
// human-readable reason. It is pure and total over all summaries, including
// inconsistent ones produced by the unclamped aggregation.
//
// The guard order is the tie-break policy: any change request beats any
// rejection, any rejection beats any amount of partial approval. A single
// negative vote is decisive regardless of quorum.
func DetermineStatus(summary entities.ApprovalSummary) (entities.ProposalStatus, string) {
	switch {
	case summary.TotalStakeholders == 0:
		return entities.ProposalStatusDraft, "No stakeholders have accepted the invitation yet."
	case summary.ChangesRequestedCount > 0:
		return entities.ProposalStatusChangesRequested,
			fmt.Sprintf("%d stakeholder(s) requested changes to the proposal.", summary.ChangesRequestedCount)
	case summary.RejectedCount > 0:
		return entities.ProposalStatusRejected,
			fmt.Sprintf("%d stakeholder(s) rejected the proposal.", summary.RejectedCount)
	case summary.ApprovedCount == summary.TotalStakeholders:
		return entities.ProposalStatusApproved, "All stakeholders approved the proposal."
	case summary.ApprovedCount > 0:
		return entities.ProposalStatusPendingApproval,
			fmt.Sprintf("%d/%d stakeholders have approved the proposal.", summary.ApprovedCount, summary.TotalStakeholders)
	default:
		return entities.ProposalStatusPendingApproval, "Waiting for stakeholder approvals."
	}
}

// SynchronizeProposalStatus recomputes the proposal status from the current
// aggregate and persists it when it differs from the stored one. It performs
// at most one write and is idempotent between approval mutations.
func (u *ApprovalUseCase) SynchronizeProposalStatus(ctx context.Context, proposalID string) (entities.StatusChange, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.StatusChange{}, ErrInvalidProposalID
	}

	proposal, err := u.proposalRepo.GetByID(ctx, proposalID)
	if err != nil {
		return entities.StatusChange{}, err
	}
	if proposal.ID == "" {
		return entities.StatusChange{}, ErrProposalNotFound
	}

	summary, err := u.CalculateApprovalSummary(ctx, proposalID)
	if err != nil {
		return entities.StatusChange{}, err
	}

	newStatus, reason := DetermineStatus(summary)
	change := entities.StatusChange{
		OldStatus: proposal.Status,
		NewStatus: newStatus,
		Changed:   newStatus != proposal.Status,
		Reason:    reason,
		Summary:   summary,
	}
	if !change.Changed {
		return change, nil
	}

	updated, err := u.proposalRepo.UpdateStatus(ctx, proposal.ID, newStatus)
	if err != nil {
		return entities.StatusChange{}, err
	}
	if updated.ID == "" {
		return entities.StatusChange{}, ErrProposalNotFound
	}
	log.Printf("[approval][usecase] status synchronized proposal_id=%s old=%s new=%s", proposal.ID, change.OldStatus, change.NewStatus)
	u.notifyStatusChange(ctx, updated, change)
	return change, nil
}

// notifyStatusChange emails every accepted stakeholder about a persisted
// status transition. Delivery failures are logged and do not fail the
// synchronization.
func (u *ApprovalUseCase) notifyStatusChange(ctx context.Context, proposal entities.Proposal, change entities.StatusChange) {
	if u.notifier == nil {
		return
	}
	accepted, err := u.stakeholderRepo.ListAcceptedByProposal(ctx, proposal.ID)
	if err != nil {
		log.Printf("[approval][usecase] status change notification skipped proposal_id=%s error=%v", proposal.ID, err)
		return
	}
	for _, stakeholder := range accepted {
		if err := u.notifier.SendStatusChange(ctx, stakeholder.Email, proposal, change); err != nil {
			log.Printf("[approval][usecase] status change email failed proposal_id=%s to=%s error=%v", proposal.ID, stakeholder.Email, err)
		}
	}
}

// IsUserAuthorizedToApprove reports whether the user holds an ACCEPTED
// stakeholder record for the proposal. Pending and declined invitations do
// not authorize, even if the user was previously invited.
func (u *ApprovalUseCase) IsUserAuthorizedToApprove(ctx context.Context, proposalID, userID string) (bool, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return false, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, ErrInvalidUserID
	}

	s, err := u.stakeholderRepo.GetByProposalAndUser(ctx, proposalID, userID)
	if err != nil {
		return false, err
	}
	return s.ID != "" && s.Status == entities.StakeholderStatusAccepted, nil
}

// GetOrCreateApproval returns the existing approval record for the pair
// unchanged, or creates one with status PENDING and no comments. Every
// (proposal, user) pair is backed by a single mutable record.
func (u *ApprovalUseCase) GetOrCreateApproval(ctx context.Context, proposalID, userID string) (entities.Approval, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Approval{}, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Approval{}, ErrInvalidUserID
	}

	existing, err := u.approvalRepo.GetByProposalAndUser(ctx, proposalID, userID)
	if err != nil {
		return entities.Approval{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	now := time.Now().UTC()
	a := entities.Approval{
		ID:         entities.ApprovalID(proposalID, userID),
		ProposalID: proposalID,
		UserID:     userID,
		Status:     entities.ApprovalStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return u.approvalRepo.Create(ctx, a)
}

// SubmitApproval records a stakeholder decision and synchronizes the
// proposal status afterwards, so the persisted status never silently
// diverges from the aggregate.
func (u *ApprovalUseCase) SubmitApproval(ctx context.Context, proposalID, userID string, status entities.ApprovalStatus, comments string) (entities.Approval, entities.StatusChange, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Approval{}, entities.StatusChange{}, ErrInvalidProposalID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Approval{}, entities.StatusChange{}, ErrInvalidUserID
	}
	switch status {
	case entities.ApprovalStatusApproved, entities.ApprovalStatusRejected, entities.ApprovalStatusChangesRequested:
	default:
		return entities.Approval{}, entities.StatusChange{}, ErrInvalidApprovalStatus
	}

	authorized, err := u.IsUserAuthorizedToApprove(ctx, proposalID, userID)
	if err != nil {
		return entities.Approval{}, entities.StatusChange{}, err
	}
	if !authorized {
		log.Printf("[approval][usecase] submit denied proposal_id=%s user_id=%s", proposalID, userID)
		return entities.Approval{}, entities.StatusChange{}, ErrUserNotAuthorized
	}

	record, err := u.GetOrCreateApproval(ctx, proposalID, userID)
	if err != nil {
		return entities.Approval{}, entities.StatusChange{}, err
	}

	updated, err := u.approvalRepo.UpdateStatus(ctx, record.ID, status, comments)
	if err != nil {
		return entities.Approval{}, entities.StatusChange{}, err
	}
	if updated.ID == "" {
		return entities.Approval{}, entities.StatusChange{}, ErrApprovalNotFound
	}

	change, err := u.SynchronizeProposalStatus(ctx, proposalID)
	if err != nil {
		return entities.Approval{}, entities.StatusChange{}, err
	}
	log.Printf("[approval][usecase] submit success proposal_id=%s user_id=%s decision=%s status_changed=%t", proposalID, userID, status, change.Changed)
	return updated, change, nil
}

func (u *ApprovalUseCase) Approve(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error) {
	return u.SubmitApproval(ctx, proposalID, userID, entities.ApprovalStatusApproved, comments)
}

func (u *ApprovalUseCase) Reject(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error) {
	return u.SubmitApproval(ctx, proposalID, userID, entities.ApprovalStatusRejected, comments)
}

func (u *ApprovalUseCase) RequestChanges(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error) {
	return u.SubmitApproval(ctx, proposalID, userID, entities.ApprovalStatusChangesRequested, comments)
}

func (u *ApprovalUseCase) ListByProposal(ctx context.Context, proposalID string) ([]entities.Approval, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	return u.approvalRepo.ListByProposal(ctx, proposalID)
}
