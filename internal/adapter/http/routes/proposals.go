package routes

import (
	"reform_flow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProposals = "/proposals"
)

func addProposalRoutes(
	rg *gin.RouterGroup,
	auth gin.HandlerFunc,
	proposalHandler *handlers.ProposalHandler,
	stakeholderHandler *handlers.StakeholderHandler,
	approvalHandler *handlers.ApprovalHandler,
) {
	proposals := rg.Group(PathProposals, auth)
	{
		proposals.POST("", proposalHandler.CreateProposal)
		proposals.GET("", proposalHandler.ListProposals)
		proposals.GET("/:proposal_id", proposalHandler.GetProposal)
		proposals.PUT("/:proposal_id", proposalHandler.UpdateProposal)
		proposals.DELETE("/:proposal_id", proposalHandler.DeleteProposal)

		// Derived status views.
		proposals.GET("/:proposal_id/summary", proposalHandler.GetSummary)
		proposals.POST("/:proposal_id/sync", proposalHandler.SynchronizeStatus)

		stakeholders := proposals.Group("/:proposal_id/stakeholders")
		{
			stakeholders.POST("", stakeholderHandler.InviteStakeholder)
			stakeholders.GET("", stakeholderHandler.ListStakeholders)
			stakeholders.PATCH("/respond", stakeholderHandler.RespondToInvitation)
		}

		approvals := proposals.Group("/:proposal_id/approvals")
		{
			approvals.POST("", approvalHandler.SubmitApproval)
			approvals.GET("", approvalHandler.ListApprovals)
			approvals.PATCH("/approve", approvalHandler.Approve)
			approvals.PATCH("/reject", approvalHandler.Reject)
			approvals.PATCH("/request-changes", approvalHandler.RequestChanges)
		}
	}
}
