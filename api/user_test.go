package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/safehaven-app/safehaven-api/schema"
)

func TestListUsersByRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := loggedIn(t, ctl, "maria@example.com", "secret1")

	m.EXPECT().UsersByRole(schema.ROLE_CONSULTANT).Return([]schema.User{
		{ID: "c1", Role: schema.ROLE_CONSULTANT, Name: "Amara"},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.GET("/:role", s.listUsersByRole)

	req := httptest.NewRequest("GET", "/consultant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Users []schema.User `json:"users"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Len(t, jResp.Users, 1, "wrong data")
}

func TestListUsersByUnknownRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := loggedIn(t, ctl, "maria@example.com", "secret1")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.GET("/:role", s.listUsersByRole)

	req := httptest.NewRequest("GET", "/superhero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Equal(t, int64(1101), jResp.Code, "wrong error code")
}

func TestListVictims(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := loggedIn(t, ctl, "maria@example.com", "secret1")

	m.EXPECT().VictimsWithRequests().Return([]schema.User{
		{ID: "v1", Role: schema.ROLE_VICTIM},
		{ID: "v3", Role: schema.ROLE_VICTIM},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.authMiddleware())
	router.GET("/", s.listVictims)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Users []schema.User `json:"users"`
	}
	assert.Nil(t, json.Unmarshal([]byte(w.Body.String()), &jResp), "wrong json unmarshal")
	assert.Len(t, jResp.Users, 2, "wrong data")
}
