package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"reform_flow/internal/domain/entities"
	mock_interfaces "reform_flow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubWorkflow satisfies IApprovalUseCase for the single method Respond
// depends on. The embedded interface is left nil; any other call panics,
// which is exactly what we want from a test double.
type stubWorkflow struct {
	IApprovalUseCase
	change entities.StatusChange
	err    error
	calls  int
}

func (s *stubWorkflow) SynchronizeProposalStatus(_ context.Context, _ string) (entities.StatusChange, error) {
	s.calls++
	return s.change, s.err
}

func TestStakeholderUseCase_Invite(t *testing.T) {
	t.Run("invalid proposal id", func(t *testing.T) {
		uc := NewStakeholderUseCase(nil, nil, nil, nil)
		_, err := uc.Invite(context.Background(), " ", "u1", "u1@corp.example")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		uc := NewStakeholderUseCase(nil, nil, nil, nil)
		_, err := uc.Invite(context.Background(), "prop-1", "", "u1@corp.example")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewStakeholderUseCase(nil, nil, nil, nil)
		_, err := uc.Invite(context.Background(), "prop-1", "u1", "not-an-email")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("proposal not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewStakeholderUseCase(nil, proposalRepo, nil, nil)
		proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.Invite(context.Background(), "prop-1", "u1", "u1@corp.example")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("already invited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewStakeholderUseCase(repo, proposalRepo, nil, nil)

		proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusDeclined}, nil)

		_, err := uc.Invite(context.Background(), "prop-1", "u1", "u1@corp.example")
		if !errors.Is(err, ErrStakeholderAlreadyInvited) {
			t.Fatalf("expected ErrStakeholderAlreadyInvited, got %v", err)
		}
	})

	t.Run("success sends invitation email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationGateway(ctrl)
		uc := NewStakeholderUseCase(repo, proposalRepo, nil, notifier)

		proposal := entities.Proposal{ID: "prop-1", ProductName: "Chocolate Bar 90g"}
		proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(proposal, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(entities.Stakeholder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Stakeholder{})).DoAndReturn(
			func(_ context.Context, s entities.Stakeholder) (entities.Stakeholder, error) {
				if s.ID != entities.StakeholderID("prop-1", "u1") {
					t.Fatalf("unexpected id: %s", s.ID)
				}
				if s.Status != entities.StakeholderStatusPending {
					t.Fatalf("expected PENDING, got %s", s.Status)
				}
				if s.InvitedAt.IsZero() {
					t.Fatalf("expected invited timestamp")
				}
				if s.RespondedAt != nil {
					t.Fatalf("unexpected responded timestamp")
				}
				return s, nil
			},
		)
		notifier.EXPECT().SendInvitation(gomock.Any(), "u1@corp.example", proposal).Return(nil)

		res, err := uc.Invite(context.Background(), " prop-1 ", " u1 ", " u1@corp.example ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Email != "u1@corp.example" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("email failure does not fail the invite", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		proposalRepo := mock_interfaces.NewMockIProposalRepository(ctrl)
		notifier := mock_interfaces.NewMockINotificationGateway(ctrl)
		uc := NewStakeholderUseCase(repo, proposalRepo, nil, notifier)

		proposalRepo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(entities.Stakeholder{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Stakeholder) (entities.Stakeholder, error) { return s, nil })
		notifier.EXPECT().SendInvitation(gomock.Any(), "u1@corp.example", gomock.Any()).Return(errors.New("smtp down"))

		if _, err := uc.Invite(context.Background(), "prop-1", "u1", "u1@corp.example"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestStakeholderUseCase_Respond(t *testing.T) {
	t.Run("invalid proposal id", func(t *testing.T) {
		uc := NewStakeholderUseCase(nil, nil, nil, nil)
		_, _, err := uc.Respond(context.Background(), "", "u1", true, "")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not invited", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewStakeholderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(entities.Stakeholder{}, nil)

		_, _, err := uc.Respond(context.Background(), "prop-1", "u1", true, "")
		if !errors.Is(err, ErrStakeholderNotFound) {
			t.Fatalf("expected ErrStakeholderNotFound, got %v", err)
		}
	})

	t.Run("already answered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewStakeholderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusAccepted}, nil)

		_, _, err := uc.Respond(context.Background(), "prop-1", "u1", true, "")
		if !errors.Is(err, ErrInvitationAlreadyAnswered) {
			t.Fatalf("expected ErrInvitationAlreadyAnswered, got %v", err)
		}
	})

	t.Run("accept synchronizes the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		workflow := &stubWorkflow{change: entities.StatusChange{
			OldStatus: entities.ProposalStatusDraft,
			NewStatus: entities.ProposalStatusPendingApproval,
			Changed:   true,
		}}
		uc := NewStakeholderUseCase(repo, nil, workflow, nil)

		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "prop-1#u1", entities.StakeholderStatusAccepted, "glad to help", gomock.AssignableToTypeOf(time.Time{})).DoAndReturn(
			func(_ context.Context, id string, status entities.StakeholderStatus, comments string, respondedAt time.Time) (entities.Stakeholder, error) {
				if respondedAt.IsZero() {
					t.Fatalf("expected responded timestamp")
				}
				return entities.Stakeholder{ID: id, Status: status, Comments: comments, RespondedAt: &respondedAt}, nil
			},
		)

		res, change, err := uc.Respond(context.Background(), " prop-1 ", " u1 ", true, "glad to help")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StakeholderStatusAccepted {
			t.Fatalf("expected ACCEPTED, got %s", res.Status)
		}
		if workflow.calls != 1 {
			t.Fatalf("expected 1 synchronization, got %d", workflow.calls)
		}
		if !change.Changed || change.NewStatus != entities.ProposalStatusPendingApproval {
			t.Fatalf("unexpected status change: %+v", change)
		}
	})

	t.Run("decline synchronizes the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		workflow := &stubWorkflow{}
		uc := NewStakeholderUseCase(repo, nil, workflow, nil)

		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "prop-1#u1", entities.StakeholderStatusDeclined, "", gomock.Any()).Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusDeclined}, nil)

		res, _, err := uc.Respond(context.Background(), "prop-1", "u1", false, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.StakeholderStatusDeclined {
			t.Fatalf("expected DECLINED, got %s", res.Status)
		}
		if workflow.calls != 1 {
			t.Fatalf("expected 1 synchronization, got %d", workflow.calls)
		}
	})

	t.Run("synchronization error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		workflow := &stubWorkflow{err: errors.New("db")}
		uc := NewStakeholderUseCase(repo, nil, workflow, nil)

		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "prop-1#u1", entities.StakeholderStatusAccepted, "", gomock.Any()).Return(
			entities.Stakeholder{ID: "prop-1#u1", Status: entities.StakeholderStatusAccepted}, nil)

		_, _, err := uc.Respond(context.Background(), "prop-1", "u1", true, "")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestStakeholderUseCase_Getters(t *testing.T) {
	t.Run("ListByProposal invalid id", func(t *testing.T) {
		uc := NewStakeholderUseCase(nil, nil, nil, nil)
		_, err := uc.ListByProposal(context.Background(), " ")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("ListByProposal success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewStakeholderUseCase(repo, nil, nil, nil)
		repo.EXPECT().ListByProposal(gomock.Any(), "prop-1").Return([]entities.Stakeholder{{ID: "prop-1#u1"}}, nil)

		res, err := uc.ListByProposal(context.Background(), "prop-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected 1 stakeholder, got %d", len(res))
		}
	})

	t.Run("GetByProposalAndUser not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewStakeholderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(entities.Stakeholder{}, nil)

		_, err := uc.GetByProposalAndUser(context.Background(), "prop-1", "u1")
		if !errors.Is(err, ErrStakeholderNotFound) {
			t.Fatalf("expected ErrStakeholderNotFound, got %v", err)
		}
	})

	t.Run("GetByProposalAndUser success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewStakeholderUseCase(repo, nil, nil, nil)
		repo.EXPECT().GetByProposalAndUser(gomock.Any(), "prop-1", "u1").Return(
			entities.Stakeholder{ID: "prop-1#u1"}, nil)

		res, err := uc.GetByProposalAndUser(context.Background(), " prop-1 ", " u1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "prop-1#u1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
