package handler

import (
	"context"
	"time"

	"notemark/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthHandler struct {
	mongoClient *mongo.Client
	startedAt   time.Time
}

func NewHealthHandler(mongoClient *mongo.Client) *HealthHandler {
	return &HealthHandler{
		mongoClient: mongoClient,
		startedAt:   time.Now(),
	}
}

// Health reports process uptime, storage reachability, and system gauges.
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "up"
	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		mongoStatus = "down"
	}

	utils.Success(c, gin.H{
		"uptime":         time.Since(h.startedAt).String(),
		"mongo":          mongoStatus,
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
	})
}
