package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const readinessTimeout = 5 * time.Second

// HealthHandler reports process liveness and dependency readiness.
type HealthHandler struct {
	pool        *pgxpool.Pool
	redisClient *redis.Client
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pool *pgxpool.Pool, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		pool:        pool,
		redisClient: redisClient,
	}
}

// Liveness returns 200 whenever the process can serve requests at all.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readiness pings every backing store and reports per-dependency status.
// Any failing dependency makes the whole check 503 so the load balancer
// drains traffic away before requests start hitting broken storage.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := map[string]string{"status": "ready"}
	healthy := true

	for name, ping := range map[string]func(context.Context) error{
		"postgres": h.pingPostgres,
		"redis":    h.pingRedis,
	} {
		if err := ping(ctx); err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = "ok"
	}

	if !healthy {
		checks["status"] = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, checks)
		return
	}

	writeJSON(w, http.StatusOK, checks)
}

func (h *HealthHandler) pingPostgres(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	return h.redisClient.Ping(ctx).Err()
}
