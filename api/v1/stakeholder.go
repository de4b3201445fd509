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

// StakeholderController handles stakeholder-related API endpoints
type StakeholderController struct {
	stakeholderService *services.StakeholderService
	cache              *cache.Client
}

// NewStakeholderController creates a new stakeholder controller
func NewStakeholderController(db *gorm.DB, logger *zap.Logger, cacheClient *cache.Client) *StakeholderController {
	return &StakeholderController{
		stakeholderService: services.NewStakeholderService(db, logger),
		cache:              cacheClient,
	}
}

// RegisterRoutes registers stakeholder routes
func (ctl *StakeholderController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("/:id/stakeholders", ctl.ListStakeholders)
		projects.POST("/:id/stakeholders", ctl.CreateStakeholder)
		projects.POST("/:id/stakeholders/bulk", ctl.CreateStakeholdersBulk)
	}

	stakeholders := router.Group("/stakeholders")
	{
		stakeholders.GET("/:id", ctl.GetStakeholder)
		stakeholders.PUT("/:id", ctl.UpdateStakeholder)
		stakeholders.DELETE("/:id", ctl.DeleteStakeholder)
	}
}

// ListStakeholders retrieves all stakeholders of a project
func (ctl *StakeholderController) ListStakeholders(c *gin.Context) {
	stakeholders, err := ctl.stakeholderService.ListStakeholders(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stakeholders)
}

// GetStakeholder retrieves a single stakeholder
func (ctl *StakeholderController) GetStakeholder(c *gin.Context) {
	stakeholder, err := ctl.stakeholderService.GetStakeholder(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, stakeholder)
}

// CreateStakeholder creates a stakeholder under a project
func (ctl *StakeholderController) CreateStakeholder(c *gin.Context) {
	var req dto.CreateStakeholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("id")
	stakeholder, err := ctl.stakeholderService.CreateStakeholder(projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	respondCreated(c, stakeholder)
}

// CreateStakeholdersBulk creates a batch of stakeholders in one transaction
func (ctl *StakeholderController) CreateStakeholdersBulk(c *gin.Context) {
	var req dto.BulkStakeholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("id")
	stakeholders, err := ctl.stakeholderService.CreateStakeholdersBulk(projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	respondCreated(c, stakeholders)
}

// UpdateStakeholder applies a partial update to a stakeholder
func (ctl *StakeholderController) UpdateStakeholder(c *gin.Context) {
	var req dto.UpdateStakeholderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	stakeholder, err := ctl.stakeholderService.UpdateStakeholder(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+stakeholder.ProjectID)
	respondOK(c, stakeholder)
}

// DeleteStakeholder removes a stakeholder
func (ctl *StakeholderController) DeleteStakeholder(c *gin.Context) {
	if err := ctl.stakeholderService.DeleteStakeholder(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:*")
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Stakeholder deleted successfully"})
}
