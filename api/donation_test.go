package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/safehaven-app/safehaven-api/schema"
	"github.com/safehaven-app/safehaven-api/store"
)

func TestCreateDonation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := loggedIn(t, ctl, "maria@example.com", "secret1")

	m.EXPECT().CreateDonation(store.CreateDonationParams{
		DonorID:       "v1",
		RecipientID:   "n1",
		RecipientType: schema.RECIPIENT_NGO,
		Amount:        100,
		Message:       "stay strong",
	}).Return(&schema.Donation{
		ID:     "generated",
		Amount: 100,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.POST("/", s.createDonation)

	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"recipientId":"n1","recipientType":"ngo","amount":100,"message":"stay strong"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Donation
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Equal(t, float64(100), jResp.Amount, "wrong amount")
}

func TestCreateDonationRejectsNonPositiveAmount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store expectation: the handler must reject before the store
	// is touched
	s, _ := loggedIn(t, ctl, "maria@example.com", "secret1")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.POST("/", s.createDonation)

	for _, body := range []string{
		`{"recipientId":"n1","recipientType":"ngo","amount":0}`,
		`{"recipientId":"n1","recipientType":"ngo","amount":-5}`,
	} {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

		var jResp ErrorResponse
		assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
		assert.Equal(t, int64(1202), jResp.Code, "wrong error code")
	}
}

func TestCreateDonationUnknownRecipientType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := loggedIn(t, ctl, "maria@example.com", "secret1")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.POST("/", s.createDonation)

	req := httptest.NewRequest("POST", "/", strings.NewReader(
		`{"recipientId":"n1","recipientType":"charity","amount":10}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1010), jResp.Code, "wrong error code")
}

func TestListDonations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := loggedIn(t, ctl, "maria@example.com", "secret1")

	m.EXPECT().DonationsByDonor("v1").Return([]schema.Donation{
		{ID: "don1", DonorID: "v1", Amount: 50},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.GET("/", s.listDonations)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Donations []schema.Donation `json:"donations"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Len(t, jResp.Donations, 1, "wrong data")
}
