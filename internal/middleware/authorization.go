package middleware

import (
	"crypto/subtle"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/chainlens/explorer/api"
	config "github.com/chainlens/explorer/configs"
)

var ErrUnauthorized = fmt.Errorf("invalid username or password")

// Authorization enforces basic auth when credentials are configured; with no
// configured credentials the API is open.
func Authorization(c *gin.Context) {
	cfg := config.Cfg.API.BasicAuth
	if cfg.Username == "" {
		c.Next()
		return
	}

	username, password, ok := c.Request.BasicAuth()
	if !ok || !validateCredentials(username, password, cfg.Username, cfg.Password) {
		api.UnauthorizedErrorHandler(c, ErrUnauthorized)
		c.Abort()
		return
	}
	c.Next()
}

func validateCredentials(username, password, wantUser, wantPass string) bool {
	userOk := subtle.ConstantTimeCompare([]byte(username), []byte(wantUser)) == 1
	passOk := subtle.ConstantTimeCompare([]byte(password), []byte(wantPass)) == 1
	return userOk && passOk
}
