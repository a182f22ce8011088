package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUserHandler reports who the request belongs to. Anonymous requests
// get a null user rather than an error so clients can probe login state.
func CurrentUserHandler(c *gin.Context, accounts *usecase.AccountsService) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.Success(c, gin.H{"user": nil})
		return
	}

	user, err := accounts.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		utils.TrackError("auth", "current_user_lookup")
		utils.InternalError(c, "Failed to load user")
		return
	}
	if user == nil {
		// Session outlived the account.
		utils.Success(c, gin.H{"user": nil})
		return
	}

	utils.Success(c, gin.H{"user": dto.ToCurrentUserResponse(user)})
}
