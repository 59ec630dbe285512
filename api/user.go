package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
)

// listUsersByRole returns the seeded users carrying the given role,
// e.g. the consultant and NGO directories.
func (s *Server) listUsersByRole(c *gin.Context) {
	role := c.Param("role")
	if !schema.ValidRole(role) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownRole)
		return
	}

	users, err := s.store.UsersByRole(role)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// listVictims returns the victims that have at least one help request
// on file, each victim once.
func (s *Server) listVictims(c *gin.Context) {
	victims, err := s.store.VictimsWithRequests()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": victims})
}
