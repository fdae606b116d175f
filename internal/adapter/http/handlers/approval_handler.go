package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	request "reform_flow/internal/adapter/http/dto/request"
	response "reform_flow/internal/adapter/http/dto/response"
	"reform_flow/internal/adapter/http/middleware"
	"reform_flow/internal/domain/entities"
	"reform_flow/internal/usecase"
	"reform_flow/pkg"

	"github.com/gin-gonic/gin"
)

const (
	headerStatusChanged = "X-Proposal-Status-Changed"
	headerOldStatus     = "X-Proposal-Old-Status"
	headerNewStatus     = "X-Proposal-New-Status"
)

var errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)

// ApprovalHandler handles HTTP requests for stakeholder decisions. Every
// mutation surfaces the resulting status synchronization through the
// X-Proposal-Status-* response headers.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// SubmitApproval records the decision carried in the request body.
func (h *ApprovalHandler) SubmitApproval(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(errMissingAuthUser.HTTPStatus, errMissingAuthUser.ToHTTPError())
		return
	}

	var payload request.ApprovalSubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}
	status, ok := payload.ResolveStatus()
	if !ok {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	h.submit(c, func(ctx context.Context, proposalID string) (entities.Approval, entities.StatusChange, error) {
		return h.usecase.SubmitApproval(ctx, proposalID, user.ID, status, payload.Comments)
	})
}

func (h *ApprovalHandler) Approve(c *gin.Context) {
	h.submitWithComments(c, h.usecase.Approve)
}

func (h *ApprovalHandler) Reject(c *gin.Context) {
	h.submitWithComments(c, h.usecase.Reject)
}

func (h *ApprovalHandler) RequestChanges(c *gin.Context) {
	h.submitWithComments(c, h.usecase.RequestChanges)
}

func (h *ApprovalHandler) submitWithComments(
	c *gin.Context,
	decide func(ctx context.Context, proposalID, userID, comments string) (entities.Approval, entities.StatusChange, error),
) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(errMissingAuthUser.HTTPStatus, errMissingAuthUser.ToHTTPError())
		return
	}

	comments, err := readComments(c)
	if err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	h.submit(c, func(ctx context.Context, proposalID string) (entities.Approval, entities.StatusChange, error) {
		return decide(ctx, proposalID, user.ID, comments)
	})
}

func (h *ApprovalHandler) submit(
	c *gin.Context,
	do func(ctx context.Context, proposalID string) (entities.Approval, entities.StatusChange, error),
) {
	proposalID := c.Param("proposal_id")

	approval, change, err := do(c.Request.Context(), proposalID)
	if err != nil {
		log.Printf("[approval][handler] submit failed proposal_id=%s err=%v", proposalID, err)
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setStatusChangeHeaders(c, change)
	c.JSON(http.StatusOK, response.FromApprovalDecision(approval, change))
}

// ListApprovals returns all approval records for a proposal.
func (h *ApprovalHandler) ListApprovals(c *gin.Context) {
	list, err := h.usecase.ListByProposal(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovals(list))
}

// readComments tolerates an absent body on the convenience decision routes.
func readComments(c *gin.Context) (string, error) {
	if c.Request.ContentLength == 0 {
		return "", nil
	}
	var payload request.ApprovalCommentsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		return "", err
	}
	return payload.Comments, nil
}

func setStatusChangeHeaders(c *gin.Context, change entities.StatusChange) {
	c.Header(headerStatusChanged, strconv.FormatBool(change.Changed))
	c.Header(headerOldStatus, string(change.OldStatus))
	c.Header(headerNewStatus, string(change.NewStatus))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidApprovalStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_A_STAKEHOLDER", "User is not an accepted stakeholder for this proposal", http.StatusForbidden)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
