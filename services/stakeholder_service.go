package services

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StakeholderService handles business logic for stakeholders
type StakeholderService struct {
	stakeholderRepo *repositories.StakeholderRepository
	projectRepo     *repositories.ProjectRepository
	logger          *zap.Logger
}

// NewStakeholderService creates a new stakeholder service instance
func NewStakeholderService(db *gorm.DB, logger *zap.Logger) *StakeholderService {
	return &StakeholderService{
		stakeholderRepo: repositories.NewStakeholderRepository(db),
		projectRepo:     repositories.NewProjectRepository(db),
		logger:          logger,
	}
}

// ListStakeholders retrieves all stakeholders of a project
func (s *StakeholderService) ListStakeholders(projectID string) ([]models.Stakeholder, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}
	return s.stakeholderRepo.FindByProjectID(projectID)
}

// GetStakeholder retrieves a stakeholder by ID
func (s *StakeholderService) GetStakeholder(id string) (models.Stakeholder, error) {
	return s.stakeholderRepo.FindByID(id)
}

// CreateStakeholder creates a stakeholder under a project
func (s *StakeholderService) CreateStakeholder(projectID string, req dto.CreateStakeholderRequest) (models.Stakeholder, error) {
	if err := s.requireProject(projectID); err != nil {
		return models.Stakeholder{}, err
	}

	created, err := s.stakeholderRepo.Create(stakeholderFromRequest(projectID, req))
	if err != nil {
		s.logger.Error("Failed to create stakeholder", zap.Error(err))
		return models.Stakeholder{}, err
	}
	return created, nil
}

// CreateStakeholdersBulk creates a batch of stakeholders in one transaction.
// If any item fails the entire batch is rolled back.
func (s *StakeholderService) CreateStakeholdersBulk(projectID string, req dto.BulkStakeholderRequest) ([]models.Stakeholder, error) {
	if err := s.requireProject(projectID); err != nil {
		return nil, err
	}

	stakeholders := make([]models.Stakeholder, 0, len(req.Stakeholders))
	for _, item := range req.Stakeholders {
		stakeholders = append(stakeholders, stakeholderFromRequest(projectID, item))
	}

	created, err := s.stakeholderRepo.CreateBatch(stakeholders)
	if err != nil {
		s.logger.Error("Failed to create stakeholder batch",
			zap.String("project_id", projectID),
			zap.Int("count", len(stakeholders)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Stakeholder batch created",
		zap.String("project_id", projectID),
		zap.Int("count", len(created)),
	)
	return created, nil
}

// UpdateStakeholder applies a partial update to a stakeholder
func (s *StakeholderService) UpdateStakeholder(id string, req dto.UpdateStakeholderRequest) (models.Stakeholder, error) {
	stakeholder, err := s.stakeholderRepo.FindByID(id)
	if err != nil {
		return models.Stakeholder{}, err
	}

	if req.Name != nil {
		stakeholder.Name = *req.Name
	}
	if req.Role != nil {
		stakeholder.Role = *req.Role
	}
	if req.Department != nil {
		stakeholder.Department = *req.Department
	}
	if req.ContactInfo != nil {
		stakeholder.ContactInfo = *req.ContactInfo
	}
	if req.InformationNeeds != nil {
		stakeholder.InformationNeeds = models.StringList(*req.InformationNeeds)
	}
	if req.PreferredChannels != nil {
		stakeholder.PreferredChannels = models.StringList(*req.PreferredChannels)
	}
	if req.PreferredFormats != nil {
		stakeholder.PreferredFormats = models.StringList(*req.PreferredFormats)
	}
	if req.CommunicationFrequency != nil {
		stakeholder.CommunicationFrequency = *req.CommunicationFrequency
	}
	if req.EscalationPath != nil {
		stakeholder.EscalationPath = *req.EscalationPath
	}
	if req.DecisionAuthority != nil {
		stakeholder.DecisionAuthority = *req.DecisionAuthority
	}
	if req.Timezone != nil {
		stakeholder.Timezone = *req.Timezone
	}
	if req.Availability != nil {
		stakeholder.Availability = *req.Availability
	}

	if err := s.stakeholderRepo.Update(stakeholder); err != nil {
		return models.Stakeholder{}, err
	}
	return stakeholder, nil
}

// DeleteStakeholder removes a stakeholder
func (s *StakeholderService) DeleteStakeholder(id string) error {
	return s.stakeholderRepo.Delete(id)
}

func (s *StakeholderService) requireProject(projectID string) error {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return err
	}
	if !exists {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func stakeholderFromRequest(projectID string, req dto.CreateStakeholderRequest) models.Stakeholder {
	return models.Stakeholder{
		ProjectID:              projectID,
		Name:                   req.Name,
		Role:                   req.Role,
		Department:             req.Department,
		ContactInfo:            req.ContactInfo,
		InformationNeeds:       models.StringList(req.InformationNeeds),
		PreferredChannels:      models.StringList(req.PreferredChannels),
		PreferredFormats:       models.StringList(req.PreferredFormats),
		CommunicationFrequency: req.CommunicationFrequency,
		EscalationPath:         req.EscalationPath,
		DecisionAuthority:      req.DecisionAuthority,
		Timezone:               req.Timezone,
		Availability:           req.Availability,
	}
}
