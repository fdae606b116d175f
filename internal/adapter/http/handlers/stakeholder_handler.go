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

var errInvalidStakeholderPayload = pkg.NewDomainErrorSimple("INVALID_STAKEHOLDER_INPUT", "Invalid stakeholder payload", http.StatusBadRequest)

// StakeholderHandler handles HTTP requests for review invitations.

type StakeholderHandler struct {
	usecase usecase.IStakeholderUseCase
}

func NewStakeholderHandler(uc usecase.IStakeholderUseCase) *StakeholderHandler {
	return &StakeholderHandler{usecase: uc}
}

// InviteStakeholder invites a user to review the proposal.
func (h *StakeholderHandler) InviteStakeholder(c *gin.Context) {
	var payload request.StakeholderInviteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStakeholderPayload.HTTPStatus, errInvalidStakeholderPayload.ToHTTPError())
		return
	}

	proposalID := c.Param("proposal_id")
	created, err := h.usecase.Invite(c.Request.Context(), proposalID, payload.UserID, payload.Email)
	if err != nil {
		log.Printf("[stakeholder][handler] invite failed proposal_id=%s user_id=%s err=%v", proposalID, payload.UserID, err)
		appErr := mapStakeholderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromStakeholder(created))
}

// ListStakeholders returns all invitations for a proposal.
func (h *StakeholderHandler) ListStakeholders(c *gin.Context) {
	list, err := h.usecase.ListByProposal(c.Request.Context(), c.Param("proposal_id"))
	if err != nil {
		appErr := mapStakeholderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStakeholders(list))
}

// RespondToInvitation records the authenticated user's accept/decline answer
// and surfaces the resulting status synchronization headers.
func (h *StakeholderHandler) RespondToInvitation(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(errMissingAuthUser.HTTPStatus, errMissingAuthUser.ToHTTPError())
		return
	}

	var payload request.StakeholderRespondRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStakeholderPayload.HTTPStatus, errInvalidStakeholderPayload.ToHTTPError())
		return
	}
	accept, ok := payload.ResolveAccept()
	if !ok {
		c.JSON(errInvalidStakeholderPayload.HTTPStatus, errInvalidStakeholderPayload.ToHTTPError())
		return
	}

	updated, change, err := h.usecase.Respond(c.Request.Context(), c.Param("proposal_id"), user.ID, accept, payload.Comments)
	if err != nil {
		appErr := mapStakeholderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	setStatusChangeHeaders(c, change)
	c.JSON(http.StatusOK, response.FromStakeholder(updated))
}

func mapStakeholderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProposalID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStakeholderAlreadyInvited):
		return pkg.NewDomainErrorSimple("STAKEHOLDER_ALREADY_INVITED", "User is already invited to this proposal", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvitationAlreadyAnswered):
		return pkg.NewDomainErrorSimple("INVITATION_ALREADY_ANSWERED", "Invitation was already answered", http.StatusConflict)
	case errors.Is(err, usecase.ErrStakeholderNotFound):
		return pkg.NewDomainErrorSimple("STAKEHOLDER_NOT_FOUND", "Stakeholder not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
