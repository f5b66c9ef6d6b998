package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/interfaces/http/middleware"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/utils"
)

// InviteMember handles POST /organizations/:id/invitations
func (h *OrganizationHandler) InviteMember(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !middleware.RequireScopeAgreement(c, orgID) {
		return
	}

	var req InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for invite member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.inviteMemberUC.Execute(c.Request.Context(), usecases.InviteMemberCommand{
		ActorID:        principal.UserID,
		ActorName:      principal.Name,
		OrganizationID: orgID,
		Email:          req.Email,
		Role:           req.Role,
		ExpiryTTL:      h.invitationExpiry,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Invitation sent")
}

// ListPendingInvitations handles GET /organizations/:id/invitations
func (h *OrganizationHandler) ListPendingInvitations(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !middleware.RequireScopeAgreement(c, orgID) {
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.listInvitationsUC.Execute(c.Request.Context(), usecases.ListPendingInvitationsQuery{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// RevokeInvitation handles DELETE /organizations/:id/invitations/:invitationId
func (h *OrganizationHandler) RevokeInvitation(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	invitationID, err := parseIDParam(c, "invitationId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !middleware.RequireScopeAgreement(c, orgID) {
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	if err := h.revokeInvitationUC.Execute(c.Request.Context(), usecases.RevokeInvitationCommand{
		ActorID:      principal.UserID,
		InvitationID: invitationID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetInvitationByToken handles GET /invitations/:token. The route is public
// so an invitee without an account can preview what they were invited to.
func (h *OrganizationHandler) GetInvitationByToken(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invitation token is required"))
		return
	}

	result, err := h.getInvitationUC.Execute(c.Request.Context(), usecases.GetInvitationByTokenQuery{
		Token: token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AcceptInvitation handles POST /invitations/:token/accept
func (h *OrganizationHandler) AcceptInvitation(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invitation token is required"))
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.acceptInvitationUC.Execute(c.Request.Context(), usecases.AcceptInvitationCommand{
		ActorID:    principal.UserID,
		ActorEmail: principal.Email,
		Token:      token,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation accepted", result)
}
