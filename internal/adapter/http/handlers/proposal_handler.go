package handlers

import (
	"errors"
	"log"
	"net/http"

	request "reform_flow/internal/adapter/http/dto/request"
	response "reform_flow/internal/adapter/http/dto/response"
	"reform_flow/internal/adapter/http/middleware"
	"reform_flow/internal/usecase"
	"reform_flow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errMissingAuthUser        = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// ProposalHandler handles HTTP requests for reformulation proposals,
// including the derived-status read and synchronization endpoints.

type ProposalHandler struct {
	usecase  usecase.IProposalUseCase
	workflow usecase.IApprovalUseCase
}

func NewProposalHandler(uc usecase.IProposalUseCase, workflow usecase.IApprovalUseCase) *ProposalHandler {
	return &ProposalHandler{usecase: uc, workflow: workflow}
}

// CreateProposal creates a DRAFT proposal owned by the authenticated user.
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(errMissingAuthUser.HTTPStatus, errMissingAuthUser.ToHTTPError())
		return
	}

	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), user.ID, usecase.ProposalInput{
		ProductName: payload.ResolveProductName(),
		CurrentCost: payload.CurrentCost,
		Category:    payload.Category,
		Formulation: payload.Formulation,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(created))
}

func (h *ProposalHandler) GetProposal(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(p))
}

// ListProposals lists proposals created by the given user, defaulting to the
// authenticated one.
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	createdBy := c.Query("created_by")
	if createdBy == "" {
		user, ok := middleware.UserFromContext(c)
		if !ok {
			c.JSON(errMissingAuthUser.HTTPStatus, errMissingAuthUser.ToHTTPError())
			return
		}
		createdBy = user.ID
	}

	list, err := h.usecase.ListByCreator(c.Request.Context(), createdBy)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(list))
}

func (h *ProposalHandler) UpdateProposal(c *gin.Context) {
	var payload request.ProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("proposal_id"), usecase.ProposalInput{
		ProductName: payload.ResolveProductName(),
		CurrentCost: payload.CurrentCost,
		Category:    payload.Category,
		Formulation: payload.Formulation,
	})
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposal(updated))
}

func (h *ProposalHandler) DeleteProposal(c *gin.Context) {
	proposalID := c.Param("proposal_id")
	if err := h.usecase.Delete(c.Request.Context(), proposalID); err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[proposal][handler] deleted proposal_id=%s", proposalID)

	c.Status(http.StatusNoContent)
}

// GetSummary returns the aggregate approval counts and the status they
// resolve to, without persisting anything.
func (h *ProposalHandler) GetSummary(c *gin.Context) {
	proposalID := c.Param("proposal_id")

	summary, err := h.workflow.CalculateApprovalSummary(c.Request.Context(), proposalID)
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status, reason := usecase.DetermineStatus(summary)
	c.JSON(http.StatusOK, response.ProposalSummaryResponse{
		ProposalID: proposalID,
		Status:     string(status),
		Reason:     reason,
		Summary:    response.FromApprovalSummary(summary),
	})
}

// SynchronizeStatus forces a status refresh for the proposal.
func (h *ProposalHandler) SynchronizeStatus(c *gin.Context) {
	change, err := h.workflow.SynchronizeProposalStatus(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapProposalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setStatusChangeHeaders(c, change)
	c.JSON(http.StatusOK, response.FromStatusChange(change))
}

func mapProposalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidCurrentCost):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
