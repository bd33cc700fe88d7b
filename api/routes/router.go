package routes

import (
	"net/http"
	"time"

	"frontdesk/internal/appointments"
	"frontdesk/internal/auth"
	"frontdesk/internal/bookingview"
	"frontdesk/internal/catalog"
	"frontdesk/internal/locations"
	"frontdesk/internal/notifications"
	"frontdesk/internal/queue"
	"frontdesk/internal/shared/config"
	"frontdesk/internal/shared/database"
	"frontdesk/internal/stats"
	"frontdesk/pkg/cache"
	"frontdesk/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config              *config.Config
	db                  *database.DB
	notificationService notifications.NotificationService

	// shared services, built once and injected across domains
	cacheService       cache.Service
	locationService    locations.Service
	catalogService     catalog.Service
	queueService       queue.Service
	appointmentService appointments.Service
}

// NewRouter creates a new router instance. notificationService may be
// nil when Kafka is unavailable; bookings then proceed without emails.
func NewRouter(cfg *config.Config, db *database.DB, notificationService notifications.NotificationService) *Router {
	return &Router{
		config:              cfg,
		db:                  db,
		notificationService: notificationService,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.buildServices()

	r.setupHealthRoutes(engine)

	engine.GET("/metrics", metrics.Handler())

	// Visitor-facing booking page at the root, outside the API prefix
	r.setupBookingViewRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupLocationRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupAppointmentRoutes(api)
		r.setupQueueRoutes(api)
		r.setupStatsRoutes(api)
	}
}

// buildServices wires the shared service graph. Order matters: the
// appointment service consumes locations, catalog and queue.
func (r *Router) buildServices() {
	r.cacheService = cache.NewService(r.db.GetRedis())

	locationRepo := locations.NewRepository(r.db.GetPostgreSQL())
	r.locationService = locations.NewService(locationRepo, r.cacheService)

	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	r.catalogService = catalog.NewService(catalogRepo, r.cacheService)

	r.queueService = queue.NewService(r.db.GetRedis(), queue.Config{
		SnapshotMax: r.config.Booking.QueueSnapshotMax,
		TTL:         r.config.Redis.QueueTTL,
	})

	var notifier appointments.Notifier
	if r.notificationService != nil {
		notifier = notifications.NewAppointmentNotifierAdapter(r.notificationService)
	}

	appointmentRepo := appointments.NewRepository(r.db.GetPostgreSQL())
	r.appointmentService = appointments.NewService(appointmentRepo, r.locationService,
		r.catalogService, r.queueService, notifier, r.config.Booking)
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "frontdesk",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "frontdesk",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

func (r *Router) setupBookingViewRoutes(engine *gin.Engine) {
	engine.SetHTMLTemplate(bookingview.Templates())

	store := bookingview.NewStore()
	options := bookingview.NewCatalogOptionsAdapter(r.locationService, r.catalogService)
	controller := bookingview.NewController(store, r.appointmentService, options)

	bookingview.SetupBookingViewRoutes(engine, controller)
}

func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController)
}

func (r *Router) setupLocationRoutes(rg *gin.RouterGroup) {
	controller := locations.NewController(r.locationService)
	locations.SetupLocationRoutes(rg, controller)
}

func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	controller := catalog.NewController(r.catalogService)
	catalog.SetupCatalogRoutes(rg, controller)
}

func (r *Router) setupAppointmentRoutes(rg *gin.RouterGroup) {
	controller := appointments.NewController(r.appointmentService)
	appointments.SetupAppointmentRoutes(rg, controller)
}

func (r *Router) setupQueueRoutes(rg *gin.RouterGroup) {
	// The appointment service reacts to called tickets: it marks the
	// appointment and pushes the now-serving notification.
	controller := queue.NewController(r.queueService, r.appointmentService)
	queue.SetupQueueRoutes(rg, controller)
}

func (r *Router) setupStatsRoutes(rg *gin.RouterGroup) {
	appointmentRepo := appointments.NewRepository(r.db.GetPostgreSQL())
	statsService := stats.NewService(appointmentRepo, r.locationService, r.queueService, r.cacheService)
	controller := stats.NewController(statsService)

	stats.SetupStatsRoutes(rg, controller)
}
