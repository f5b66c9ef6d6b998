package organization

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/organization/usecases"
	"crewdesk/internal/shared/errors"
)

type CreateOrganizationRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Slug    string `json:"slug" binding:"omitempty,max=100"`
	Logo    string `json:"logo" binding:"omitempty,max=500"`
	Website string `json:"website" binding:"omitempty,max=500"`
}

func (r *CreateOrganizationRequest) ToCommand(actorID uint) usecases.CreateOrganizationCommand {
	return usecases.CreateOrganizationCommand{
		ActorID: actorID,
		Name:    r.Name,
		Slug:    r.Slug,
		Logo:    r.Logo,
		Website: r.Website,
	}
}

type UpdateOrganizationRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	Logo         *string `json:"logo" binding:"omitempty,max=500"`
	Website      *string `json:"website" binding:"omitempty,max=500"`
	BillingEmail *string `json:"billing_email" binding:"omitempty,email"`
	BillingName  *string `json:"billing_name" binding:"omitempty,max=100"`
}

func (r *UpdateOrganizationRequest) ToCommand(actorID, organizationID uint) usecases.UpdateOrganizationCommand {
	return usecases.UpdateOrganizationCommand{
		ActorID:        actorID,
		OrganizationID: organizationID,
		Name:           r.Name,
		Logo:           r.Logo,
		Website:        r.Website,
		BillingEmail:   r.BillingEmail,
		BillingName:    r.BillingName,
	}
}

type InviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type UpdateMemberRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
