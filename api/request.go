package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
	"github.com/safehaven-app/safehaven-api/store"
)

// listRequests serves every request listing of the app. The scope
// query parameter selects whose view it is:
//
//	mine      the victim's own requests
//	assigned  requests assigned to the consultant
//	feed      the consultant's work feed: own assignments plus pending
//	          requests matching the consultant's specialization
//
// Without a scope the full collection is returned, optionally narrowed
// with status=pending. Results keep insertion order; any further
// sorting or today/upcoming splitting is the client's concern.
func (s *Server) listRequests(c *gin.Context) {
	requester := c.GetString("requester")

	switch c.Query("scope") {
	case "mine":
		requests, err := s.store.RequestsByVictim(requester)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests})

	case "assigned":
		requests, err := s.store.RequestsByConsultant(requester)
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests})

	case "feed":
		account := currentAccount(c)

		assigned, err := s.store.RequestsByConsultant(requester)
		if shouldInterupt(err, c) {
			return
		}

		pending, err := s.store.PendingRequests()
		if shouldInterupt(err, c) {
			return
		}

		feed := assigned
		for _, r := range pending {
			if account.Specialization != "" && r.Type != account.Specialization {
				continue
			}
			feed = append(feed, r)
		}

		c.JSON(http.StatusOK, gin.H{"requests": feed})

	default:
		var (
			requests []schema.HelpRequest
			err      error
		)
		if c.Query("status") == schema.REQUEST_PENDING {
			requests, err = s.store.PendingRequests()
		} else {
			requests, err = s.store.AllRequests()
		}
		if shouldInterupt(err, c) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"requests": requests})
	}
}

// createRequest files a new help request for the active user. The
// store assigns id and timestamp and forces the status to pending.
func (s *Server) createRequest(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		Type        string  `json:"type"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Urgency     string  `json:"urgency"`
		Amount      float64 `json:"amount"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Description) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	// an amount only makes sense on money requests
	amount := params.Amount
	if params.Type != schema.REQUEST_MONEY {
		amount = 0
	}

	request, err := s.store.CreateRequest(store.CreateRequestParams{
		VictimID:    requester,
		Type:        params.Type,
		Title:       strings.TrimSpace(params.Title),
		Description: strings.TrimSpace(params.Description),
		Urgency:     params.Urgency,
		Amount:      amount,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, request)
}

// updateRequest applies a partial update: assignment, scheduling and
// status changes all come through here. Fields absent from the body
// keep their prior value.
func (s *Server) updateRequest(c *gin.Context) {
	id := c.Param("requestID")

	var patch store.RequestPatch
	if err := c.BindJSON(&patch); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.store.UpdateRequest(id, patch)
	if err != nil {
		if err == store.ErrRequestNotExist {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotExist, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, request)
}
