package v1

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/lib/cache"
	"github.com/commplan-simple/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommunicationPlanController handles communication plan API endpoints
type CommunicationPlanController struct {
	planService *services.CommunicationPlanService
	cache       *cache.Client
}

// NewCommunicationPlanController creates a new communication plan controller
func NewCommunicationPlanController(db *gorm.DB, logger *zap.Logger, cacheClient *cache.Client) *CommunicationPlanController {
	return &CommunicationPlanController{
		planService: services.NewCommunicationPlanService(db, logger),
		cache:       cacheClient,
	}
}

// RegisterRoutes registers communication plan routes
func (ctl *CommunicationPlanController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("/:id/communication-plan", ctl.GetPlan)
		projects.POST("/:id/communication-plan", ctl.CreatePlan)
		projects.PUT("/:id/communication-plan", ctl.UpdatePlan)
	}
}

// GetPlan retrieves the project's communication plan with its matrix
func (ctl *CommunicationPlanController) GetPlan(c *gin.Context) {
	plan, err := ctl.planService.GetPlanForProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, plan)
}

// CreatePlan creates the communication plan for a project. Returns 400 when
// the project already has one.
func (ctl *CommunicationPlanController) CreatePlan(c *gin.Context) {
	var req dto.CreateCommunicationPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("id")
	plan, err := ctl.planService.CreatePlan(projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	respondCreated(c, plan)
}

// UpdatePlan applies a partial update to the project's plan
func (ctl *CommunicationPlanController) UpdatePlan(c *gin.Context) {
	var req dto.UpdateCommunicationPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("id")
	plan, err := ctl.planService.UpdatePlan(projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	respondOK(c, plan)
}
