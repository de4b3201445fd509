package v1

import (
	"net/http"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/lib/cache"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService    *services.ProjectService
	validationService *services.ValidationService
	cache             *cache.Client
}

// NewProjectController creates a new project controller
func NewProjectController(db *gorm.DB, logger *zap.Logger, cacheClient *cache.Client) *ProjectController {
	return &ProjectController{
		projectService:    services.NewProjectService(db, logger),
		validationService: services.NewValidationService(),
		cache:             cacheClient,
	}
}

// RegisterRoutes registers project routes
func (ctl *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/projects")
	{
		projects.GET("", ctl.ListProjects)
		projects.POST("", ctl.CreateProject)
		projects.GET("/:id", ctl.GetProject)
		projects.PUT("/:id", ctl.UpdateProject)
		projects.DELETE("/:id", ctl.DeleteProject)
		projects.GET("/:id/complete", ctl.GetCompleteProject)
		projects.GET("/:id/validate", ctl.ValidateProject)
	}
}

// ListProjects retrieves all projects
func (ctl *ProjectController) ListProjects(c *gin.Context) {
	projects, err := ctl.projectService.ListProjects()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, projects)
}

// GetProject retrieves a single project
func (ctl *ProjectController) GetProject(c *gin.Context) {
	project, err := ctl.projectService.GetProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, project)
}

// GetCompleteProject retrieves the full aggregate with stakeholders, plan and
// matrix entries, read through the cache when one is configured.
func (ctl *ProjectController) GetCompleteProject(c *gin.Context) {
	projectID := c.Param("id")
	key := cache.Key("projects", "complete", projectID)

	var cached models.Project
	if ctl.cache.GetJSON(c.Request.Context(), key, &cached) {
		respondOK(c, cached)
		return
	}

	project, err := ctl.projectService.GetCompleteProject(projectID)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.SetJSON(c.Request.Context(), key, project)
	respondOK(c, project)
}

// ValidateProject runs the completeness check on the full aggregate
func (ctl *ProjectController) ValidateProject(c *gin.Context) {
	project, err := ctl.projectService.GetCompleteProject(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	report := ctl.validationService.ValidateProject(project)
	c.JSON(http.StatusOK, report)
}

// CreateProject creates a new project
func (ctl *ProjectController) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctl.projectService.CreateProject(req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, project)
}

// UpdateProject applies a partial update to a project
func (ctl *ProjectController) UpdateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	projectID := c.Param("id")
	project, err := ctl.projectService.UpdateProject(projectID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	respondOK(c, project)
}

// DeleteProject deletes a project and everything it owns
func (ctl *ProjectController) DeleteProject(c *gin.Context) {
	projectID := c.Param("id")
	if err := ctl.projectService.DeleteProject(projectID); err != nil {
		respondError(c, err)
		return
	}

	ctl.cache.Invalidate(c.Request.Context(), "projects:complete:"+projectID)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Project deleted successfully"})
}
