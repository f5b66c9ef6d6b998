package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/ticket/usecases"
	"crewdesk/internal/interfaces/http/middleware"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC   usecases.CreateTicketExecutor
	getTicketUC      usecases.GetTicketExecutor
	listTicketsUC    usecases.ListTicketsExecutor
	updateStatusUC   usecases.UpdateStatusExecutor
	assignTicketUC   usecases.AssignTicketExecutor
	changePriorityUC usecases.ChangePriorityExecutor
	addCommentUC     usecases.AddCommentExecutor
	editCommentUC    usecases.EditCommentExecutor
	deleteCommentUC  usecases.DeleteCommentExecutor
	deleteTicketUC   usecases.DeleteTicketExecutor
	logger           logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	changePriorityUC usecases.ChangePriorityExecutor,
	addCommentUC usecases.AddCommentExecutor,
	editCommentUC usecases.EditCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:   createTicketUC,
		getTicketUC:      getTicketUC,
		listTicketsUC:    listTicketsUC,
		updateStatusUC:   updateStatusUC,
		assignTicketUC:   assignTicketUC,
		changePriorityUC: changePriorityUC,
		addCommentUC:     addCommentUC,
		editCommentUC:    editCommentUC,
		deleteCommentUC:  deleteCommentUC,
		deleteTicketUC:   deleteTicketUC,
		logger:           logger.NewLogger(),
	}
}

func actorFrom(c *gin.Context) (usecases.Actor, bool) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return usecases.Actor{}, false
	}
	return usecases.Actor{
		UserID:     principal.UserID,
		SystemRole: principal.SystemRole,
	}, true
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if req.OrganizationID == nil {
		req.OrganizationID = middleware.ActiveOrganizationFrom(c)
	} else if !middleware.RequireScopeAgreement(c, *req.OrganizationID) {
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Actor:    actor,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if req.OrganizationID == nil {
		req.OrganizationID = middleware.ActiveOrganizationFrom(c)
	} else if !middleware.RequireScopeAgreement(c, *req.OrganizationID) {
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// UpdateStatus handles PUT /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateStatusCommand{
		Actor:    actor,
		TicketID: ticketID,
		Status:   req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated", result)
}

// AssignTicket handles PUT /tickets/:id/assignee
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		Actor:      actor,
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assignee updated", result)
}

// ChangePriority handles PUT /tickets/:id/priority
func (h *TicketHandler) ChangePriority(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.changePriorityUC.Execute(c.Request.Context(), usecases.ChangePriorityCommand{
		Actor:    actor,
		TicketID: ticketID,
		Priority: req.Priority,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket priority updated", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		Actor:    actor,
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
