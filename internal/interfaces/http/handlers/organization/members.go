package organization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/interfaces/http/middleware"
	"crewdesk/internal/shared/utils"
)

// ListMembers handles GET /organizations/:id/members
func (h *OrganizationHandler) ListMembers(c *gin.Context) {
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

	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMemberRole handles PUT /organizations/:id/members/:userId
func (h *OrganizationHandler) UpdateMemberRole(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := parseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !middleware.RequireScopeAgreement(c, orgID) {
		return
	}

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	if err := h.updateUserRoleUC.Execute(c.Request.Context(), usecases.UpdateUserRoleCommand{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
		UserID:         userID,
		Role:           req.Role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member role updated", nil)
}

// RemoveMember handles DELETE /organizations/:id/members/:userId
func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := parseIDParam(c, "userId")
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

	if err := h.removeUserUC.Execute(c.Request.Context(), usecases.RemoveUserCommand{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
		UserID:         userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
