package handler

import (
	"context"
	"time"

	"main/services"
	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports connectivity of the backing stores plus basic host
// load.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	mongoOK := false
	if utils.MongoClient != nil {
		mongoOK = utils.MongoClient.Ping(ctx, readpref.Primary()) == nil
	}

	redisOK := services.TokenBlacklist.IsConnected() || services.GlobalAnalyticsCache.IsConnected()

	status := "ok"
	if !mongoOK {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status":      status,
		"mongo":       mongoOK,
		"redis":       redisOK,
		"cpu_percent": utils.GetCPUUsage(),
	})
}
