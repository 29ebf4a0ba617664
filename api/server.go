package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/jikgwan/companion-api/lifecycle"
	"github.com/jikgwan/companion-api/logmodule"
	"github.com/jikgwan/companion-api/metrics"
	"github.com/jikgwan/companion-api/schema"
	"github.com/jikgwan/companion-api/store"
	"github.com/jikgwan/companion-api/utils"
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
	store store.MatchingCore

	// Request and proposal state machine
	lifecycle lifecycle.Lifecycle

	// HMAC key signing access and refresh tokens
	jwtSecret []byte
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtSecret []byte) *Server {
	s := store.NewMatchingStore(ormDB)

	return &Server{
		store:     s,
		lifecycle: lifecycle.NewEngine(s),
		jwtSecret: jwtSecret,
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
	r.Use(metrics.Instrument())
	r.Use(cors.New(corsConfig()))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// reference data is public so a client can pick a favorite team before signing up
	apiRoute.GET("/teams", s.listTeams)
	apiRoute.GET("/games", s.listGames)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/signup", s.signup)
		authRoute.POST("/login", s.login)
		authRoute.POST("/refresh", s.refreshToken)
	}

	// api route other than `/information`, `/teams`, `/games` and `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeAccountMiddleware())

	userRoute := apiRoute.Group("/users")
	{
		userRoute.GET("/me", s.accountDetail)
		userRoute.PUT("/me", s.accountUpdate)
	}

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listOpenRequests)
		requestRoute.GET("/:requestID", s.requestDetail)
		requestRoute.PUT("/:requestID", s.updateRequest)

		requestRoute.POST("/:requestID/proposals", s.submitProposal)
		requestRoute.GET("/:requestID/proposals", s.listRequestProposals)
		requestRoute.GET("/:requestID/proposed-ticket", s.proposedTicket)

		requestRoute.POST("/:requestID/confirm-ticket", s.confirmTicket)
		requestRoute.POST("/:requestID/complete", s.completeRequest)
		requestRoute.POST("/:requestID/cancel", s.cancelRequest)
	}

	proposalRoute := apiRoute.Group("/proposals")
	{
		proposalRoute.GET("/:proposalID", s.proposalDetail)
		proposalRoute.POST("/:proposalID/accept", s.acceptProposal)
		proposalRoute.POST("/:proposalID/reject", s.rejectProposal)
	}

	mypageRoute := apiRoute.Group("/mypage")
	{
		mypageRoute.GET("/requests", s.myRequests)
		mypageRoute.GET("/proposals", s.myProposals)
		mypageRoute.GET("/stats", s.myStats)
	}

	metricRoute := r.Group("/metrics")
	metricRoute.Use(logmodule.Ginrus("Metric"))
	{
		metricRoute.GET("", metrics.Handler())
	}

	r.GET("/healthz", s.healthz)

	return r
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := viper.GetStringSlice("cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return config
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	abortWithError(c, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
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
			"roles":           []schema.Role{schema.RoleSenior, schema.RoleHelper},
			"accompany_types": []schema.AccompanyType{schema.AccompanyWith, schema.AccompanyTicketOnly},
			"max_tickets":     schema.MaxTicketsPerRequest,
			"languages":       utils.MessageLanguages,
			"system_version":  "Companion 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, localized(c, obj))
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		if err != nil {
			c.Error(err)
		}
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}

// pathID reads a numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return 0, false
	}
	return uint(id), true
}
