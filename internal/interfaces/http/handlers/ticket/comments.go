package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/ticket/usecases"
	"crewdesk/internal/shared/utils"
)

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Message:     req.Message,
		IsInternal:  req.IsInternal,
		Attachments: toAttachmentInputs(req.Attachments),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

// EditComment handles PUT /tickets/comments/:commentId
func (h *TicketHandler) EditComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	result, err := h.editCommentUC.Execute(c.Request.Context(), usecases.EditCommentCommand{
		Actor:     actor,
		CommentID: commentID,
		Message:   req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated", result)
}

// DeleteComment handles DELETE /tickets/comments/:commentId
func (h *TicketHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseIDParam(c, "commentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		Actor:     actor,
		CommentID: commentID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
