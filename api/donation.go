package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safehaven-app/safehaven-api/schema"
	"github.com/safehaven-app/safehaven-api/store"
)

// createDonation records a transfer from the active user to an NGO or
// a victim. Amount validation happens here; the store stores whatever
// it is handed.
func (s *Server) createDonation(c *gin.Context) {
	requester := c.GetString("requester")

	var params struct {
		RecipientID   string  `json:"recipientId"`
		RecipientType string  `json:"recipientType"`
		Amount        float64 `json:"amount"`
		Message       string  `json:"message"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.RecipientID == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingRequiredFields)
		return
	}

	if params.RecipientType != schema.RECIPIENT_NGO && params.RecipientType != schema.RECIPIENT_VICTIM {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Amount <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidDonationAmount)
		return
	}

	donation, err := s.store.CreateDonation(store.CreateDonationParams{
		DonorID:       requester,
		RecipientID:   params.RecipientID,
		RecipientType: params.RecipientType,
		Amount:        params.Amount,
		Message:       params.Message,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, donation)
}

// listDonations returns the active user's own donations.
func (s *Server) listDonations(c *gin.Context) {
	requester := c.GetString("requester")

	donations, err := s.store.DonationsByDonor(requester)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"donations": donations})
}
