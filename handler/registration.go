package handler

import (
	"errors"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// RegistrationHandler creates an unverified account and triggers the
// confirmation email. Duplicate emails are a conflict, not a validation error.
// baseURL is the externally reachable origin for the confirmation link; when
// empty, it is derived from the request.
func RegistrationHandler(c *gin.Context, accounts *usecase.AccountsService, baseURL string) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackError("auth", "invalid_request")
		utils.BadRequest(c, "Email and password are required")
		return
	}

	if baseURL == "" {
		baseURL = utils.GetBaseURL(c)
	}

	user, err := accounts.Register(c.Request.Context(), req.Email, req.Password, baseURL)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			utils.Conflict(c, "Email is already registered")
		case errors.Is(err, model.ErrInvalidInput):
			utils.BadRequest(c, err.Error())
		default:
			utils.TrackError("auth", "registration_failed")
			utils.InternalError(c, "Failed to register user")
		}
		return
	}

	utils.Created(c, "Registration successful, please confirm your email", gin.H{
		"user": dto.ToUserResponse(user),
	})
}
