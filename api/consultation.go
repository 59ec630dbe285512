package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
	"github.com/safehaven-app/safehaven-api/store"
)

// scheduleConsultation books a session between the active consultant
// and a victim. This only appends to the consultation collection; the
// caller issues the matching PATCH on the help request itself, as two
// separate writes with no atomicity between them.
func (s *Server) scheduleConsultation(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		RequestID     string `json:"requestId"`
		VictimID      string `json:"victimId"`
		ScheduledDate string `json:"scheduledDate"`
		Notes         string `json:"notes"`
		Status        string `json:"status"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.RequestID == "" || params.VictimID == "" || params.ScheduledDate == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	status := params.Status
	if status == "" {
		status = schema.CONSULTATION_SCHEDULED
	}

	consultation, err := s.store.ScheduleConsultation(store.ScheduleConsultationParams{
		RequestID:     params.RequestID,
		ConsultantID:  requester,
		VictimID:      params.VictimID,
		ScheduledDate: params.ScheduledDate,
		Notes:         params.Notes,
		Status:        status,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, consultation)
}

// listConsultations returns the active consultant's schedule in
// booking order. Splitting into today and upcoming stays client-side.
func (s *Server) listConsultations(c *gin.Context) {
	requester := c.GetString("requester")

	consultations, err := s.store.ConsultationsByConsultant(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"consultations": consultations})
}
