package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
)

// currentAccount pulls the active user the auth middleware resolved
// into the context.
func currentAccount(c *gin.Context) *schema.User {
	return c.MustGet("account").(*schema.User)
}

// accountDetail returns the active user of the process.
func (s *Server) accountDetail(c *gin.Context) {
	c.JSON(http.StatusOK, currentAccount(c))
}
