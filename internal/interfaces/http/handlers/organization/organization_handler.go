package organization

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/interfaces/http/middleware"
	sharedauth "crewdesk/internal/shared/auth"
	sharedConfig "crewdesk/internal/shared/config"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type OrganizationHandler struct {
	createOrgUC        usecases.CreateOrganizationExecutor
	updateOrgUC        usecases.UpdateOrganizationExecutor
	deleteOrgUC        usecases.DeleteOrganizationExecutor
	getOrgUC           usecases.GetOrganizationExecutor
	listOrgsUC         usecases.ListOrganizationsExecutor
	listMembersUC      usecases.ListMembersExecutor
	removeUserUC       usecases.RemoveUserExecutor
	updateUserRoleUC   usecases.UpdateUserRoleExecutor
	inviteMemberUC     usecases.InviteMemberExecutor
	acceptInvitationUC usecases.AcceptInvitationExecutor
	revokeInvitationUC usecases.RevokeInvitationExecutor
	getInvitationUC    usecases.GetInvitationByTokenExecutor
	listInvitationsUC  usecases.ListPendingInvitationsExecutor
	invitationExpiry   time.Duration
	logger             logger.Interface
}

func NewOrganizationHandler(
	createOrgUC usecases.CreateOrganizationExecutor,
	updateOrgUC usecases.UpdateOrganizationExecutor,
	deleteOrgUC usecases.DeleteOrganizationExecutor,
	getOrgUC usecases.GetOrganizationExecutor,
	listOrgsUC usecases.ListOrganizationsExecutor,
	listMembersUC usecases.ListMembersExecutor,
	removeUserUC usecases.RemoveUserExecutor,
	updateUserRoleUC usecases.UpdateUserRoleExecutor,
	inviteMemberUC usecases.InviteMemberExecutor,
	acceptInvitationUC usecases.AcceptInvitationExecutor,
	revokeInvitationUC usecases.RevokeInvitationExecutor,
	getInvitationUC usecases.GetInvitationByTokenExecutor,
	listInvitationsUC usecases.ListPendingInvitationsExecutor,
	invitationCfg *sharedConfig.InvitationConfig,
) *OrganizationHandler {
	return &OrganizationHandler{
		createOrgUC:        createOrgUC,
		updateOrgUC:        updateOrgUC,
		deleteOrgUC:        deleteOrgUC,
		getOrgUC:           getOrgUC,
		listOrgsUC:         listOrgsUC,
		listMembersUC:      listMembersUC,
		removeUserUC:       removeUserUC,
		updateUserRoleUC:   updateUserRoleUC,
		inviteMemberUC:     inviteMemberUC,
		acceptInvitationUC: acceptInvitationUC,
		revokeInvitationUC: revokeInvitationUC,
		getInvitationUC:    getInvitationUC,
		listInvitationsUC:  listInvitationsUC,
		invitationExpiry:   time.Duration(invitationCfg.ExpiryDays) * 24 * time.Hour,
		logger:             logger.NewLogger(),
	}
}

func principalFrom(c *gin.Context) (sharedauth.Principal, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
	}
	return principal, ok
}

// CreateOrganization handles POST /organizations
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create organization", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.createOrgUC.Execute(c.Request.Context(), req.ToCommand(principal.UserID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Organization created successfully")
}

// GetOrganization handles GET /organizations/:id
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
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

	result, err := h.getOrgUC.Execute(c.Request.Context(), usecases.GetOrganizationQuery{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListOrganizations handles GET /organizations
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.listOrgsUC.Execute(c.Request.Context(), usecases.ListOrganizationsQuery{
		ActorID: principal.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateOrganization handles PUT /organizations/:id
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !middleware.RequireScopeAgreement(c, orgID) {
		return
	}

	var req UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, ok := principalFrom(c)
	if !ok {
		return
	}

	result, err := h.updateOrgUC.Execute(c.Request.Context(), req.ToCommand(principal.UserID, orgID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated", result)
}

// DeleteOrganization handles DELETE /organizations/:id
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
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

	if err := h.deleteOrgUC.Execute(c.Request.Context(), usecases.DeleteOrganizationCommand{
		ActorID:        principal.UserID,
		OrganizationID: orgID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
