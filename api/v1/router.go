package v1

import (
	"github.com/commplan-simple/lib/cache"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, db *gorm.DB, logger *zap.Logger, cacheClient *cache.Client) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	NewProjectController(db, logger, cacheClient).RegisterRoutes(router)
	NewStakeholderController(db, logger, cacheClient).RegisterRoutes(router)
	NewCommunicationPlanController(db, logger, cacheClient).RegisterRoutes(router)
	NewMatrixController(db, logger, cacheClient).RegisterRoutes(router)
	NewExportController(db, logger).RegisterRoutes(router)
	NewUserController(db, logger).RegisterRoutes(router)
	NewCacheController(cacheClient).RegisterRoutes(router)
}
