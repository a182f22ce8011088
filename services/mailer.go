package services

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"main/model"
)

// Mailer delivers a confirmation message for a newly registered account.
// Kept as an interface so the delivery channel can change without touching
// the registration flow.
type Mailer interface {
	SendConfirmationEmail(user *model.User, confirmationURL string) error
}

// FileMailer is a file-drop stand-in for an outbound mail service: each
// confirmation email is written as an HTML file into Dir.
type FileMailer struct {
	Dir string
}

func NewFileMailer(dir string) *FileMailer {
	return &FileMailer{Dir: dir}
}

func (m *FileMailer) SendConfirmationEmail(user *model.User, confirmationURL string) error {
	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create email directory: %w", err)
	}

	filename := filepath.Join(m.Dir, fmt.Sprintf("confirmation_%s_%s.html",
		user.UserID, time.Now().Format("2006-01-02_15-04-05")))

	content := buildConfirmationEmail(user.Email, confirmationURL)
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write confirmation email: %w", err)
	}

	return nil
}

func buildConfirmationEmail(email, confirmationURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Confirm Your Account</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .button { display: inline-block; padding: 10px 20px; background-color: #007bff; color: white; text-decoration: none; border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Welcome!</h1>
        <p>Hello,</p>
        <p>Thank you for registering with email: <strong>%s</strong></p>
        <p>Please click the button below to confirm your account:</p>
        <p><a href="%s" class="button">Confirm My Account</a></p>
        <p>Or copy and paste this link into your browser:</p>
        <p><a href="%s">%s</a></p>
        <p>If you did not create an account, please ignore this email.</p>
    </div>
</body>
</html>
`, email, confirmationURL, confirmationURL, confirmationURL)
}
