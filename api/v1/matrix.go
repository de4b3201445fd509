package v1

import (
	"net/http"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/lib/cache"
	"github.com/commplan-simple/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MatrixController handles communication matrix API endpoints
type MatrixController struct {
	matrixService *services.MatrixService
	cache         *cache.Client
}

// NewMatrixController creates a new matrix controller
func NewMatrixController(db *gorm.DB, logger *zap.Logger, cacheClient *cache.Client) *MatrixController {
	return &MatrixController{
		matrixService: services.NewMatrixService(db, logger),
		cache:         cacheClient,
	}
}

// RegisterRoutes registers matrix routes
func (ctl *MatrixController) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/communication-plans")
	{
		plans.GET("/:id/matrix", ctl.ListEntries)
		plans.POST("/:id/matrix", ctl.CreateEntry)
		plans.POST("/:id/matrix/bulk", ctl.CreateEntriesBulk)
	}

	matrix := router.Group("/matrix")
	{
		matrix.PUT("/:id", ctl.UpdateEntry)
		matrix.DELETE("/:id", ctl.DeleteEntry)
	}
}

// ListEntries retrieves all matrix entries of a communication plan
func (ctl *MatrixController) ListEntries(c *gin.Context) {
	entries, err := ctl.matrixService.ListEntries(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, entries)
}

// CreateEntry creates a matrix entry under a communication plan
func (ctl *MatrixController) CreateEntry(c *gin.Context) {
	var req dto.CreateMatrixEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := ctl.matrixService.CreateEntry(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:*")
	respondCreated(c, entry)
}

// CreateEntriesBulk creates a batch of matrix entries in one transaction
func (ctl *MatrixController) CreateEntriesBulk(c *gin.Context) {
	var req dto.BulkMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entries, err := ctl.matrixService.CreateEntriesBulk(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:*")
	respondCreated(c, entries)
}

// UpdateEntry applies a partial update to a matrix entry
func (ctl *MatrixController) UpdateEntry(c *gin.Context) {
	var req dto.UpdateMatrixEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	entry, err := ctl.matrixService.UpdateEntry(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:*")
	respondOK(c, entry)
}

// DeleteEntry removes a matrix entry
func (ctl *MatrixController) DeleteEntry(c *gin.Context) {
	if err := ctl.matrixService.DeleteEntry(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:*")
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Matrix entry deleted successfully"})
}
