package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/liamkavfc/SculpoDatabase/internal/auth"
	"github.com/liamkavfc/SculpoDatabase/internal/availability"
	"github.com/liamkavfc/SculpoDatabase/internal/booking"
	"github.com/liamkavfc/SculpoDatabase/internal/catalog"
	"github.com/liamkavfc/SculpoDatabase/internal/config"
	"github.com/liamkavfc/SculpoDatabase/internal/email"
	"github.com/liamkavfc/SculpoDatabase/internal/goals"
	"github.com/liamkavfc/SculpoDatabase/internal/profile"
	"github.com/liamkavfc/SculpoDatabase/internal/questionnaire"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(50, 100))

	bookingRepo := booking.NewRepository(db)
	availabilityRepo := availability.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)

	availabilityService := availability.NewService(availabilityRepo, booking.NewAvailabilitySource(bookingRepo), profileRepo)
	bookingService := booking.NewService(bookingRepo, profileRepo, catalogRepo, emailService)

	availabilityHandler := availability.NewHandler(availabilityService)
	bookingHandler := booking.NewHandler(bookingService)
	questionnaireHandler := questionnaire.NewHandler(questionnaire.NewRepository(db))
	goalsHandler := goals.NewHandler(goals.NewRepository(db))

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	trainers := router.Group("/trainers")
	{
		// Schedule reads stay public so clients can browse before booking.
		trainers.GET("/:trainerID/availability", availabilityHandler.GetAvailability)
		trainers.GET("/:trainerID/availability/range", availabilityHandler.GetAvailabilityForRange)
		trainers.GET("/:trainerID/availability/slots/next", availabilityHandler.GetNextAvailableSlots)

		protected := trainers.Group("")
		protected.Use(authMiddleware)
		{
			protected.PUT("/:trainerID/availability", auth.RequireUserType("trainer"), availabilityHandler.SetAvailability)
			protected.POST("/:trainerID/blocked-times", auth.RequireUserType("trainer"), availabilityHandler.BlockTime)
			protected.GET("/:trainerID/dashboard", auth.RequireUserType("trainer"), bookingHandler.GetDashboard)
			protected.GET("/:trainerID/clients", auth.RequireUserType("trainer"), bookingHandler.GetClients)
		}
	}

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.DELETE("/blocked-times/:blockID", auth.RequireUserType("trainer"), availabilityHandler.UnblockTime)

		protected.POST("/bookings", bookingHandler.CreateBooking)
		protected.PATCH("/bookings/:bookingID/status", bookingHandler.UpdateStatus)
		protected.POST("/bookings/:bookingID/confirmation", bookingHandler.SendConfirmation)
		protected.GET("/users/:userID/bookings", bookingHandler.GetUserBookings)
		protected.GET("/users/:userID/answers", questionnaireHandler.GetAnswers)

		protected.POST("/questions", auth.RequireUserType("trainer"), questionnaireHandler.CreateQuestion)
		protected.PUT("/questions/:questionID", auth.RequireUserType("trainer"), questionnaireHandler.UpdateQuestion)
		protected.DELETE("/questions/:questionID", auth.RequireUserType("trainer"), questionnaireHandler.DeleteQuestion)
		protected.POST("/questions/answers", questionnaireHandler.SubmitAnswer)

		protected.POST("/goals", goalsHandler.CreateGoal)
		protected.PATCH("/goals/:goalID/status", goalsHandler.UpdateGoalStatus)
		protected.GET("/clients/:clientID/goals", goalsHandler.ListGoals)
	}

	router.GET("/questions", questionnaireHandler.GetQuestions)
	router.GET("/questions/:questionID", questionnaireHandler.GetQuestion)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
