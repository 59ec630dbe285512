package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
	"github.com/safehaven-app/safehaven-api/session"
)

// login resolves credentials against the seeded roster and installs
// the match as the active user of the process.
func (s *Server) login(c *gin.Context) {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Email) == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	user, err := s.sessions.Login(params.Email, params.Password)
	if err != nil {
		if err == session.ErrCredentialMismatch {
			abortWithEncoding(c, http.StatusUnauthorized, errorCredentialMismatch, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, user)
}

// register creates a fresh unverified account and makes it the active
// user. The new record never joins the queryable roster; it is visible
// only through the session.
func (s *Server) register(c *gin.Context) {
	var params struct {
		Email          string `json:"email"`
		Password       string `json:"password"`
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		Role           string `json:"role"`
		Location       string `json:"location"`
		Specialization string `json:"specialization"`
		Description    string `json:"description"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Email) == "" || params.Password == "" || strings.TrimSpace(params.Name) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	if !schema.ValidRole(params.Role) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownRole)
		return
	}

	user := s.sessions.Register(session.RegisterParams{
		Email:          params.Email,
		Password:       params.Password,
		Name:           params.Name,
		Phone:          params.Phone,
		Role:           params.Role,
		Location:       params.Location,
		Specialization: params.Specialization,
		Description:    params.Description,
	})

	c.JSON(http.StatusOK, user)
}

// logout clears the active user and erases the durable snapshot.
func (s *Server) logout(c *gin.Context) {
	s.sessions.Logout()
	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
