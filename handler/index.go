package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ohio-order/config"
	"ohio-order/models"
)

const (
	componentUp       = "up"
	componentDown     = "down"
	componentDisabled = "disabled"
)

type HealthStatus struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Drafts   string `json:"drafts"`
	Redis    string `json:"redis"`
	Database string `json:"database"`
}

type pinger func(ctx context.Context) error

func check(ctx context.Context, ping pinger) string {
	if ping == nil {
		return componentDisabled
	}
	if err := ping(ctx); err != nil {
		return componentDown
	}
	return componentUp
}

// Health reports the optional backends behind the order front. A backend
// that is down degrades the status; the check itself still answers 200.
func Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var redisPing, dbPing pinger
	if models.RedisClient != nil {
		redisPing = func(ctx context.Context) error { return models.RedisClient.Ping(ctx).Err() }
	}
	if config.DB != nil {
		dbPing = config.DB.Ping
	}

	health := HealthStatus{
		Status:   "ok",
		Service:  "ohio-order",
		Drafts:   "memory",
		Redis:    check(ctx, redisPing),
		Database: check(ctx, dbPing),
	}
	if health.Redis != componentDisabled {
		health.Drafts = "redis"
	}
	if health.Redis == componentDown || health.Database == componentDown {
		health.Status = "degraded"
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Ohio Order Web",
		Data:    health,
	})
}
