package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "furreal_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// RealsCreated counts published reals.
	RealsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "furreal_reals_created_total",
		Help: "Total number of reals published",
	})

	// FriendTransitions counts friendship state transitions by kind.
	FriendTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "furreal_friend_transitions_total",
		Help: "Total number of friendship transitions by kind",
	}, []string{"kind"})
)

// InitMetrics creates the fiberprometheus middleware for the given service name.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the fiberprometheus handler as a Fiber middleware.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
