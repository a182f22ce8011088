package dto

import "main/model"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public shape of an account. The hash, token, and
// verification state never leave through it.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CurrentUserResponse is the authenticated self view.
type CurrentUserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	IsVerified bool   `json:"is_verified"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Email: user.Email,
	}
}

func ToCurrentUserResponse(user *model.User) CurrentUserResponse {
	return CurrentUserResponse{
		ID:         user.UserID,
		Email:      user.Email,
		IsVerified: user.IsVerified,
	}
}
