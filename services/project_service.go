package services

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service instance
func NewProjectService(db *gorm.DB, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(db),
		logger:      logger,
	}
}

// ListProjects retrieves all projects, newest first
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.projectRepo.FindAll()
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(projectID string) (models.Project, error) {
	return s.projectRepo.FindByID(projectID)
}

// GetCompleteProject retrieves the full aggregate: project, stakeholders,
// communication plan and matrix entries.
func (s *ProjectService) GetCompleteProject(projectID string) (models.Project, error) {
	return s.projectRepo.FindComplete(projectID)
}

// CreateProject creates a new project from the request payload
func (s *ProjectService) CreateProject(req dto.CreateProjectRequest) (models.Project, error) {
	project := models.Project{
		Name:               req.Name,
		Description:        req.Description,
		Charter:            req.Charter,
		Goals:              req.Goals,
		Phases:             models.StringList(req.Phases),
		Milestones:         models.StringList(req.Milestones),
		RiskManagementPlan: req.RiskManagementPlan,
	}

	created, err := s.projectRepo.Create(project)
	if err != nil {
		s.logger.Error("Failed to create project", zap.Error(err))
		return models.Project{}, err
	}

	s.logger.Info("Project created",
		zap.String("id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

// UpdateProject applies a partial update to an existing project. Nil fields in
// the patch keep their prior values.
func (s *ProjectService) UpdateProject(projectID string, req dto.UpdateProjectRequest) (models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		return models.Project{}, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Charter != nil {
		project.Charter = *req.Charter
	}
	if req.Goals != nil {
		project.Goals = *req.Goals
	}
	if req.Phases != nil {
		project.Phases = models.StringList(*req.Phases)
	}
	if req.Milestones != nil {
		project.Milestones = models.StringList(*req.Milestones)
	}
	if req.RiskManagementPlan != nil {
		project.RiskManagementPlan = *req.RiskManagementPlan
	}

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// DeleteProject deletes a project and everything it owns
func (s *ProjectService) DeleteProject(projectID string) error {
	if err := s.projectRepo.Delete(projectID); err != nil {
		return err
	}
	s.logger.Info("Project deleted", zap.String("id", projectID))
	return nil
}
