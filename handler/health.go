package handler

import (
	"context"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports process and database liveness.
func HealthHandler(c *gin.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "up"
	status := "ok"
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		mongoStatus = "down"
		status = "degraded"
	}

	mongoMetrics := utils.GetMongoMetrics()

	utils.Success(c, gin.H{
		"status": status,
		"mongo":  mongoStatus,
		"mongo_connections": gin.H{
			"active":  mongoMetrics.ActiveConnections,
			"created": mongoMetrics.CreatedConnections,
			"closed":  mongoMetrics.ClosedConnections,
		},
	})
}
