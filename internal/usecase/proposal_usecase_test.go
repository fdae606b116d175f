package usecase

import (
	"context"
	"errors"
	"testing"

	"reform_flow/internal/domain/entities"
	mock_interfaces "reform_flow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProposalUseCase_Create(t *testing.T) {
	input := ProposalInput{ProductName: "Chocolate Bar 90g", CurrentCost: 2.35, Category: "confectionery", Formulation: "cocoa 40%, sugar 30%"}

	t.Run("invalid creator", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", input)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid product name", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "u1", ProposalInput{ProductName: "  ", CurrentCost: 1})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("invalid current cost", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "u1", ProposalInput{ProductName: "Bar", CurrentCost: 0})
		if !errors.Is(err, ErrInvalidCurrentCost) {
			t.Fatalf("expected ErrInvalidCurrentCost, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.ID == "" {
					t.Fatalf("expected generated id")
				}
				if p.Status != entities.ProposalStatusDraft {
					t.Fatalf("expected DRAFT, got %s", p.Status)
				}
				if p.CreatedBy != "u1" || p.ProductName != "Chocolate Bar 90g" {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return p, nil
			},
		)

		res, err := uc.Create(context.Background(), " u1 ", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CurrentCost != 2.35 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProposalUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.GetByID(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)

		res, err := uc.GetByID(context.Background(), " prop-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "prop-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestProposalUseCase_ListByCreator(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.ListByCreator(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().ListByCreator(gomock.Any(), "u1").Return([]entities.Proposal{{ID: "prop-1"}, {ID: "prop-2"}}, nil)

		res, err := uc.ListByCreator(context.Background(), "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 2 {
			t.Fatalf("expected 2 proposals, got %d", len(res))
		}
	})
}

func TestProposalUseCase_Update(t *testing.T) {
	input := ProposalInput{ProductName: "Chocolate Bar 80g", CurrentCost: 2.1}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		_, err := uc.Update(context.Background(), "", input)
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		_, err := uc.Update(context.Background(), "prop-1", input)
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("status is preserved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)

		current := entities.Proposal{ID: "prop-1", ProductName: "Chocolate Bar 90g", CurrentCost: 2.35, Status: entities.ProposalStatusPendingApproval, CreatedBy: "u1"}
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(current, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Proposal{})).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusPendingApproval {
					t.Fatalf("status must not change on update, got %s", p.Status)
				}
				if p.ProductName != "Chocolate Bar 80g" || p.CurrentCost != 2.1 {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.UpdatedAt.IsZero() {
					t.Fatalf("expected updated timestamp")
				}
				return p, nil
			},
		)

		res, err := uc.Update(context.Background(), " prop-1 ", input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "prop-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("update races with a delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Proposal{}, nil)

		_, err := uc.Update(context.Background(), "prop-1", input)
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil)
		err := uc.Delete(context.Background(), "")
		if !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{}, nil)

		err := uc.Delete(context.Background(), "prop-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("cascades to stakeholders and approvals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		stakeholderRepo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		approvalRepo := mock_interfaces.NewMockIApprovalRepository(ctrl)
		uc := NewProposalUseCase(repo, stakeholderRepo, approvalRepo)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		stakeholderRepo.EXPECT().DeleteByProposal(gomock.Any(), "prop-1").Return(nil)
		approvalRepo.EXPECT().DeleteByProposal(gomock.Any(), "prop-1").Return(nil)
		repo.EXPECT().Delete(gomock.Any(), "prop-1").Return(nil)

		if err := uc.Delete(context.Background(), "prop-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("cascade failure aborts the delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		stakeholderRepo := mock_interfaces.NewMockIStakeholderRepository(ctrl)
		uc := NewProposalUseCase(repo, stakeholderRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "prop-1").Return(entities.Proposal{ID: "prop-1"}, nil)
		stakeholderRepo.EXPECT().DeleteByProposal(gomock.Any(), "prop-1").Return(errors.New("db"))

		err := uc.Delete(context.Background(), "prop-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
