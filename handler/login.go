package handler

import (
	"errors"

	"main/config"
	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler checks credentials and opens a session. Unknown email and
// wrong password are indistinguishable to the caller; an unconfirmed
// account with correct credentials gets a distinct forbidden response.
func LoginHandler(c *gin.Context, accounts *usecase.AccountsService, sessionRepo middleware.SessionRepository, cfg *config.ServerConfig) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Email and password are required")
		return
	}

	user, err := accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCredentials):
			utils.Unauthorized(c, "Invalid credentials")
		case errors.Is(err, model.ErrNotVerified):
			utils.Forbidden(c, "Email address is not confirmed")
		default:
			utils.TrackError("auth", "login_failed")
			utils.InternalError(c, "Failed to log in")
		}
		return
	}

	// The session id travels only in the HttpOnly cookie, never in the body.
	if _, err := middleware.CreateSession(c, user.UserID, sessionRepo, cfg); err != nil {
		utils.TrackError("session", "create_failed")
		utils.InternalError(c, "Failed to create session")
		return
	}

	utils.Success(c, gin.H{"user": dto.ToCurrentUserResponse(user)})
}
