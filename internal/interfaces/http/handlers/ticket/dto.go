package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/ticket/usecases"
	"crewdesk/internal/shared/constants"
	"crewdesk/internal/shared/errors"
)

type AttachmentRequest struct {
	FileName string `json:"file_name" binding:"required,max=255"`
	FileSize int64  `json:"file_size" binding:"required,gt=0"`
	FileType string `json:"file_type" binding:"max=100"`
	FileURL  string `json:"file_url" binding:"required,max=1000"`
}

func toAttachmentInputs(reqs []AttachmentRequest) []usecases.AttachmentInput {
	if len(reqs) == 0 {
		return nil
	}
	inputs := make([]usecases.AttachmentInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, usecases.AttachmentInput{
			FileName: r.FileName,
			FileSize: r.FileSize,
			FileType: r.FileType,
			FileURL:  r.FileURL,
		})
	}
	return inputs
}

type CreateTicketRequest struct {
	Subject        string              `json:"subject" binding:"required,max=200"`
	Message        string              `json:"message" binding:"required,max=10000"`
	Category       string              `json:"category" binding:"required"`
	Priority       string              `json:"priority" binding:"required"`
	OrganizationID *uint               `json:"organization_id,omitempty"`
	Attachments    []AttachmentRequest `json:"attachments,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(actor usecases.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:          actor,
		Subject:        r.Subject,
		Message:        r.Message,
		Category:       r.Category,
		Priority:       r.Priority,
		OrganizationID: r.OrganizationID,
		Attachments:    toAttachmentInputs(r.Attachments),
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignTicketRequest struct {
	AssigneeID *uint `json:"assignee_id"`
}

type ChangePriorityRequest struct {
	Priority string `json:"priority" binding:"required"`
}

type AddCommentRequest struct {
	Message     string              `json:"message" binding:"required,max=10000"`
	IsInternal  bool                `json:"is_internal"`
	Attachments []AttachmentRequest `json:"attachments,omitempty"`
}

type EditCommentRequest struct {
	Message string `json:"message" binding:"required,max=10000"`
}

type ListTicketsRequest struct {
	OrganizationID *uint
	Status         string
	Priority       string
	Category       string
	Search         string
	AssignedToMe   bool
	ReportedByMe   bool
	Page           int
	PageSize       int
	SortBy         string
	SortOrder      string
}

func (r *ListTicketsRequest) ToQuery(actor usecases.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:          actor,
		OrganizationID: r.OrganizationID,
		Status:         r.Status,
		Priority:       r.Priority,
		Category:       r.Category,
		Search:         r.Search,
		AssignedToMe:   r.AssignedToMe,
		ReportedByMe:   r.ReportedByMe,
		Page:           r.Page,
		PageSize:       r.PageSize,
		SortBy:         r.SortBy,
		SortOrder:      r.SortOrder,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(constants.DefaultPage)))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(constants.DefaultPageSize)))

	req := &ListTicketsRequest{
		Status:       c.Query("status"),
		Priority:     c.Query("priority"),
		Category:     c.Query("category"),
		Search:       c.Query("search"),
		AssignedToMe: c.Query("assigned_to_me") == "true",
		ReportedByMe: c.Query("reported_by_me") == "true",
		Page:         page,
		PageSize:     pageSize,
		SortBy:       c.Query("sort_by"),
		SortOrder:    c.Query("sort_order"),
	}

	if orgIDStr := c.Query("organization_id"); orgIDStr != "" {
		orgID, err := strconv.ParseUint(orgIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid organization_id")
		}
		id := uint(orgID)
		req.OrganizationID = &id
	}

	return req, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name)
	}
	return uint(id), nil
}
