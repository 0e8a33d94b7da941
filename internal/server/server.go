package server

import (
	"context"
	"net/http"

	"github.com/Uoerim/UniSphere-sub001/internal/auth"
	"github.com/Uoerim/UniSphere-sub001/internal/cache"
	"github.com/Uoerim/UniSphere-sub001/internal/config"
	"github.com/Uoerim/UniSphere-sub001/internal/reservation"
	"github.com/Uoerim/UniSphere-sub001/internal/room"
	"github.com/Uoerim/UniSphere-sub001/internal/timeslot"
	"github.com/Uoerim/UniSphere-sub001/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, catalogCache *cache.Cache) *Server {
	router := gin.Default()
	registerValidators()
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	userService := user.NewService(user.NewRepository(db), cfg.JWTSecret)
	roomRepo := room.NewRepository(db)
	slotRepo := timeslot.NewRepository(db)
	roomService := room.NewService(roomRepo, catalogCache)
	slotService := timeslot.NewService(slotRepo, catalogCache)
	reservationService := reservation.NewService(reservation.NewRepository(db), roomRepo, slotRepo)

	userHandler := user.NewHandler(userService)
	roomHandler := room.NewHandler(roomService)
	slotHandler := timeslot.NewHandler(slotService)
	reservationHandler := reservation.NewHandler(reservationService)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/rooms", roomHandler.ListRooms)
		protected.GET("/timeslots", slotHandler.ListTimeslots)
		protected.GET("/availability", reservationHandler.GetAvailability)
		protected.POST("/reservations", reservationHandler.CreateReservation)
		protected.PATCH("/reservations/:id/cancel", reservationHandler.CancelReservation)
		protected.GET("/reservations/mine", reservationHandler.ListMyReservations)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/admin")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("/rooms", roomHandler.CreateRoom)
		admin.DELETE("/rooms/:id", roomHandler.DeleteRoom)
		admin.PATCH("/rooms/:id/deactivate", roomHandler.DeactivateRoom)
		admin.POST("/timeslots", slotHandler.CreateTimeslot)
		admin.DELETE("/timeslots/:id", slotHandler.DeleteTimeslot)
		admin.GET("/reservations", reservationHandler.ListReservationsByDate)
		admin.GET("/analytics/reservations", reservationHandler.GetReservationStats)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
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

// Router exposes the gin engine for tests.
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
