package handler

import (
	"net/http"

	"main/usecase"

	"github.com/gin-gonic/gin"
)

const confirmSuccessPage = `<!DOCTYPE html>
<html>
<head><title>Email confirmed</title></head>
<body>
    <h1>Email confirmed</h1>
    <p>Your account is now active. You can log in.</p>
</body>
</html>`

const confirmErrorPage = `<!DOCTYPE html>
<html>
<head><title>Invalid confirmation link</title></head>
<body>
    <h1>Invalid confirmation link</h1>
    <p>This confirmation link is invalid or has already been used.</p>
</body>
</html>`

// ConfirmEmailHandler redeems a confirmation token from the emailed link.
// It answers with a browser-facing HTML page rather than JSON since the
// link is opened directly from the mail client.
func ConfirmEmailHandler(c *gin.Context, accounts *usecase.AccountsService) {
	token := c.Param("token")

	if _, err := accounts.Confirm(c.Request.Context(), token); err != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(confirmErrorPage))
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(confirmSuccessPage))
}
