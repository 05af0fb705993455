package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bluehaven/internal/domain/user"
	"bluehaven/internal/handler/api"
	reqdto "bluehaven/internal/handler/dto/request"
	"bluehaven/internal/handler/middleware"
	"bluehaven/internal/infra/ratelimit"
	"bluehaven/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Booking      *api.BookingHandler
	Availability *api.AvailabilityHandler
	Payment      *api.PaymentHandler
	Guest        *api.GuestHandler
	Admin        *api.AdminHandler
	Review       *api.ReviewHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	booking *api.BookingHandler,
	availability *api.AvailabilityHandler,
	payment *api.PaymentHandler,
	guest *api.GuestHandler,
	admin *api.AdminHandler,
	review *api.ReviewHandler,
) Handlers {
	return Handlers{
		Auth:         auth,
		Booking:      booking,
		Availability: availability,
		Payment:      payment,
		Guest:        guest,
		Admin:        admin,
		Review:       review,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	reqdto.RegisterValidators()
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware, rateLimit)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())

	engine.HandleMethodNotAllowed = true
	engine.NoRoute(middleware.NoRoute)
	engine.NoMethod(middleware.NoMethod)
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, rateLimit *middleware.RateLimitMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(rateLimit.Limit(ratelimit.BucketDefault))
	{
		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{rateLimit.Limit(ratelimit.BucketBooking)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPost, Path: "/:id/payments", Handler: h.Payment.Process, Mw: []gin.HandlerFunc{rateLimit.Limit(ratelimit.BucketBooking)}},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Availability.BlockedDates},
				{Method: http.MethodGet, Path: "/quote", Handler: h.Availability.Quote},
				{Method: http.MethodGet, Path: "/calendar", Handler: h.Availability.Calendar},
				{Method: http.MethodPost, Path: "/selection", Handler: h.Availability.Pick},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/payments/methods", Handler: h.Payment.Methods},
			{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.List},
		})

		auth := apiGroup.Group("/auth")
		auth.Use(rateLimit.Limit(ratelimit.BucketAuth))
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/admin/login", Handler: h.Auth.AdminLogin},
				{Method: http.MethodPost, Path: "/guest/login", Handler: h.Auth.GuestLogin},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})
		}

		guest := apiGroup.Group("/guest")
		guest.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleGuest))
		{
			addRoutes(guest, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Guest.Bookings},
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Guest.Dashboard},
				{Method: http.MethodPost, Path: "/reviews", Handler: h.Guest.CreateReview},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Admin.UpdateStatus},
				{Method: http.MethodGet, Path: "/bookings/:id/payments", Handler: h.Admin.Payments},
				{Method: http.MethodDelete, Path: "/bookings", Handler: h.Admin.ClearAll, Mw: []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleSuperAdmin)}},
				{Method: http.MethodGet, Path: "/reminders/upcoming", Handler: h.Admin.UpcomingReminders},
				{Method: http.MethodPost, Path: "/reminders/:id/:kind", Handler: h.Admin.SendReminder},
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
		"status":  "ok",
		"message": "Service is healthy",
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
