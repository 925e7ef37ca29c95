package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"studiobooking/internal/handler/api"
	"studiobooking/internal/handler/middleware"
	"studiobooking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	draftHandler *api.DraftHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg, authHandler, availabilityHandler, bookingHandler, draftHandler, sessionMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	draftHandler *api.DraftHandler,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	otpLimiter := middleware.NewIPRateLimiter(cfg.OTP.SendRPS, cfg.OTP.SendBurst)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/send-otp", Handler: authHandler.SendOTP, Mw: []gin.HandlerFunc{otpLimiter.Limit()}},
				{Method: http.MethodPost, Path: "/verify-otp", Handler: authHandler.VerifyOTP},
				{Method: http.MethodPost, Path: "/verify-device", Handler: authHandler.VerifyDevice},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.GetAvailability},
			{Method: http.MethodGet, Path: "/schedule", Handler: availabilityHandler.GetDaySchedule},
			{Method: http.MethodGet, Path: "/settings", Handler: availabilityHandler.GetSettings},
		})

		drafts := apiGroup.Group("/drafts")
		drafts.Use(sessionMiddleware.OptionalSession())
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: draftHandler.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: draftHandler.Get},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: draftHandler.Advance},
				{Method: http.MethodDelete, Path: "/:id", Handler: draftHandler.Reset},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(sessionMiddleware.RequireSession())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: bookingHandler.Modify},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Cancel},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
