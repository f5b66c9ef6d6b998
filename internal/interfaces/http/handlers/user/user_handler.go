package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"crewdesk/internal/application/user/usecases"
	"crewdesk/internal/interfaces/http/middleware"
	sharedauth "crewdesk/internal/shared/auth"
	"crewdesk/internal/shared/errors"
	"crewdesk/internal/shared/logger"
	"crewdesk/internal/shared/utils"
)

type RegisterUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required,max=100"`
	Image string `json:"image" binding:"omitempty,max=500"`
}

type UserHandler struct {
	registerUserUC   usecases.RegisterUserExecutor
	getCurrentUserUC usecases.GetCurrentUserExecutor
	logger           logger.Interface
}

func NewUserHandler(
	registerUserUC usecases.RegisterUserExecutor,
	getCurrentUserUC usecases.GetCurrentUserExecutor,
) *UserHandler {
	return &UserHandler{
		registerUserUC:   registerUserUC,
		getCurrentUserUC: getCurrentUserUC,
		logger:           logger.NewLogger(),
	}
}

// RegisterUser handles POST /users. Restricted to platform admins: user
// records normally arrive through the identity provider sync, not self-serve.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}
	if !sharedauth.IsSystemAdmin(principal.SystemRole) {
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("only platform administrators can register users"))
		return
	}

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register user", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.registerUserUC.Execute(c.Request.Context(), usecases.RegisterUserCommand{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User registered")
}

// GetCurrentUser handles GET /users/me
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authentication")
		return
	}

	result, err := h.getCurrentUserUC.Execute(c.Request.Context(), usecases.GetCurrentUserQuery{
		UserID: principal.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
