package v1

import (
	"net/http"

	"github.com/commplan-simple/lib/cache"
	"github.com/gin-gonic/gin"
)

// CacheController exposes cache statistics and flushing
type CacheController struct {
	cache *cache.Client
}

// NewCacheController creates a new cache controller
func NewCacheController(cacheClient *cache.Client) *CacheController {
	return &CacheController{cache: cacheClient}
}

// RegisterRoutes registers cache routes
func (ctl *CacheController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/cache/stats", ctl.GetStats)
	router.DELETE("/cache/stats", ctl.Flush)
}

// GetStats reports the state of the cache namespace
func (ctl *CacheController) GetStats(c *gin.Context) {
	stats, err := ctl.cache.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stats)
}

// Flush clears the cache namespace
func (ctl *CacheController) Flush(c *gin.Context) {
	if err := ctl.cache.Flush(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Cache cleared successfully"})
}
