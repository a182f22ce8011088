package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"main/model"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// UserStore is the slice of the user repository the account lifecycle needs.
type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUser(ctx context.Context, userID string) (*model.User, error)
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByConfirmationToken(ctx context.Context, token string) (*model.User, error)
	MarkUserVerified(ctx context.Context, userID string) error
}

// AccountsService orchestrates registration, confirmation, and credential
// checks. Identity is always passed in explicitly; the service holds no
// request state.
type AccountsService struct {
	Users  UserStore
	Mailer services.Mailer
}

const maxEmailLength = 180

// Register creates an unverified account and dispatches exactly one
// confirmation email linking back to baseURL. The returned user carries the
// hash and token; callers expose only id and email.
func (svc *AccountsService) Register(ctx context.Context, email, password, baseURL string) (*model.User, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", model.ErrInvalidInput)
	}

	if len(email) > maxEmailLength || !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", model.ErrInvalidInput)
	}

	if !utils.ValidatePassword(password) {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", model.ErrInvalidInput)
	}

	// Exact-match duplicate check; the unique index backs this up against
	// concurrent registrations.
	existing, err := svc.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, model.ErrEmailTaken
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := services.GenerateConfirmationToken()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:            uuid.New().String(),
		Email:             email,
		Password:          hashed,
		IsVerified:        false,
		ConfirmationToken: token,
		CreatedAt:         time.Now(),
	}

	if err := svc.Users.AddUser(ctx, user); err != nil {
		return nil, err
	}

	confirmationURL := fmt.Sprintf("%s/api/confirm/%s",
		strings.TrimRight(baseURL, "/"), token)
	if err := svc.Mailer.SendConfirmationEmail(user, confirmationURL); err != nil {
		// The account exists; delivery failure must not fail registration.
		utils.TrackError("mail", "confirmation_send_failed")
		log.Printf("Warning: Failed to send confirmation email for user %s: %v", user.UserID, err)
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Confirm redeems a confirmation token. The token is single use: the first
// successful call verifies the account and clears the token, so a second
// call with the same token fails with model.ErrNotFound.
func (svc *AccountsService) Confirm(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, model.ErrNotFound
	}

	user, err := svc.Users.FindUserByConfirmationToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up confirmation token: %w", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "confirm")
		return nil, model.ErrNotFound
	}

	if err := svc.Users.MarkUserVerified(ctx, user.UserID); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.ConfirmationToken = ""

	utils.TrackAuthAttempt("success", "confirm")
	return user, nil
}

// Authenticate checks credentials. Wrong email or password is
// model.ErrInvalidCredentials regardless of verification state; a correct
// credential on an unconfirmed account is model.ErrNotVerified.
func (svc *AccountsService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)

	user, err := svc.Users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}

	match, err := services.VerifyPassword(user.Password, password)
	if err != nil || !match {
		utils.TrackAuthAttempt("failure", "login")
		return nil, model.ErrInvalidCredentials
	}

	if !user.IsVerified {
		utils.TrackAuthAttempt("failure", "login_unverified")
		return nil, model.ErrNotVerified
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}

// CurrentUser resolves an identity by id, for session-bound lookups.
// Returns (nil, nil) when the user no longer exists.
func (svc *AccountsService) CurrentUser(ctx context.Context, userID string) (*model.User, error) {
	return svc.Users.FindUser(ctx, userID)
}
