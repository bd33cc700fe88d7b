package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/gin-gonic/gin"
)

var (
	bookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_bookings_total",
			Help: "Total booking attempts by outcome",
		},
		[]string{"location_id", "outcome"},
	)

	queueLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "frontdesk_queue_length",
			Help: "Current waiting queue length per location",
		},
		[]string{"location_id"},
	)

	queueOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_queue_operations_total",
			Help: "Total queue operations",
		},
		[]string{"operation", "location_id", "status"},
	)

	notificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frontdesk_notifications_sent_total",
			Help: "Total notifications published by type and status",
		},
		[]string{"type", "status"},
	)
)

// Monitor periodically samples Redis queue state into gauges.
type Monitor struct {
	redis *redis.Client
}

func NewMonitor(redisClient *redis.Client) *Monitor {
	monitor := &Monitor{redis: redisClient}

	go monitor.collect()

	return monitor
}

func (m *Monitor) collect() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx := context.Background()

		waitingKeys, _ := m.redis.Keys(ctx, "queue:waiting:*").Result()
		for _, key := range waitingKeys {
			locationID := key[len("queue:waiting:"):]
			length, _ := m.redis.ZCard(ctx, key).Result()
			queueLength.WithLabelValues(locationID).Set(float64(length))
		}
	}
}

// TrackBooking records a booking attempt outcome ("success"/"failure")
func TrackBooking(locationID, outcome string) {
	bookingsTotal.WithLabelValues(locationID, outcome).Inc()
}

// TrackQueueOperation records a queue operation outcome
func TrackQueueOperation(operation, locationID, status string) {
	queueOperations.WithLabelValues(operation, locationID, status).Inc()
}

// TrackNotification records a published notification
func TrackNotification(notificationType, status string) {
	notificationsSent.WithLabelValues(notificationType, status).Inc()
}

// Handler exposes the Prometheus scrape endpoint as a gin handler
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
