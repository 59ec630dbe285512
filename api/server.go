package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/safehaven-app/safehaven-api/logmodule"
	"github.com/safehaven-app/safehaven-api/session"
	"github.com/safehaven-app/safehaven-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.SupportCore

	// Active session of the running process
	sessions *session.Directory
}

// NewServer new instance of server
func NewServer(supportStore store.SupportCore, sessions *session.Directory) *Server {
	return &Server{
		store:    supportStore,
		sessions: sessions,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/login", s.login)
		authRoute.POST("/register", s.register)
	}

	// api route other than `/auth/login` and `/auth/register` will
	// apply the following middleware
	apiRoute.Use(s.authMiddleware())

	apiRoute.POST("/auth/logout", s.logout)

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.GET("/me", s.accountDetail)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.GET("", s.listRequests)
		requestRoute.POST("", s.createRequest)
		requestRoute.PATCH("/:requestID", s.updateRequest)
	}

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/:role", s.listUsersByRole)
	}
	apiRoute.GET("/victims", s.listVictims)

	donationRoute := apiRoute.Group("/donations")
	{
		donationRoute.GET("", s.listDonations)
		donationRoute.POST("", s.createDonation)
	}

	consultationRoute := apiRoute.Group("/consultations")
	{
		consultationRoute.GET("", s.listConsultations)
		consultationRoute.POST("", s.scheduleConsultation)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// authMiddleware resolves the directory's active user into the request
// context. The process serves exactly one logged-in identity at a
// time; requests arriving with no active session are rejected here.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := s.sessions.Current()
		if user == nil {
			abortWithEncoding(c, http.StatusUnauthorized, errorAuthenticationRequired)
			return
		}

		c.Set("requester", user.ID)
		c.Set("account", user)
		c.Next()
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"system_version": "SafeHaven 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
