package services

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CommunicationPlanService handles business logic for communication plans
type CommunicationPlanService struct {
	planRepo    *repositories.CommunicationPlanRepository
	projectRepo *repositories.ProjectRepository
	logger      *zap.Logger
}

// NewCommunicationPlanService creates a new communication plan service instance
func NewCommunicationPlanService(db *gorm.DB, logger *zap.Logger) *CommunicationPlanService {
	return &CommunicationPlanService{
		planRepo:    repositories.NewCommunicationPlanRepository(db),
		projectRepo: repositories.NewProjectRepository(db),
		logger:      logger,
	}
}

// GetPlanForProject retrieves the project's plan with its matrix entries
func (s *CommunicationPlanService) GetPlanForProject(projectID string) (models.CommunicationPlan, error) {
	return s.planRepo.FindByProjectIDWithMatrix(projectID)
}

// CreatePlan creates the communication plan for a project. A project has at
// most one plan; a second creation attempt returns ErrPlanExists.
func (s *CommunicationPlanService) CreatePlan(projectID string, req dto.CreateCommunicationPlanRequest) (models.CommunicationPlan, error) {
	exists, err := s.projectRepo.Exists(projectID)
	if err != nil {
		return models.CommunicationPlan{}, err
	}
	if !exists {
		return models.CommunicationPlan{}, gorm.ErrRecordNotFound
	}

	hasPlan, err := s.planRepo.ExistsForProject(projectID)
	if err != nil {
		return models.CommunicationPlan{}, err
	}
	if hasPlan {
		return models.CommunicationPlan{}, ErrPlanExists
	}

	plan := models.CommunicationPlan{
		ProjectID:                   projectID,
		CommunicationObjectives:     req.CommunicationObjectives,
		CommunicationStrategy:       req.CommunicationStrategy,
		EscalationProcedures:        req.EscalationProcedures,
		CommunicationConstraints:    req.CommunicationConstraints,
		CompanyGuidelines:           req.CompanyGuidelines,
		AvailableTechnologies:       models.StringList(req.AvailableTechnologies),
		DocumentationStandards:      req.DocumentationStandards,
		ComplianceRequirements:      req.ComplianceRequirements,
		InformationTypes:            models.StringList(req.InformationTypes),
		ConfidentialityRequirements: req.ConfidentialityRequirements,
		LanguageConsiderations:      req.LanguageConsiderations,
		CulturalConsiderations:      req.CulturalConsiderations,
		CommunicationBudget:         req.CommunicationBudget,
		BudgetBreakdown:             req.BudgetBreakdown,
		FeedbackMechanisms:          req.FeedbackMechanisms,
		UpdateProcedures:            req.UpdateProcedures,
		EffectivenessMetrics:        req.EffectivenessMetrics,
	}

	created, err := s.planRepo.Create(plan)
	if err != nil {
		s.logger.Error("Failed to create communication plan",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return models.CommunicationPlan{}, err
	}

	s.logger.Info("Communication plan created",
		zap.String("id", created.ID),
		zap.String("project_id", projectID),
	)
	return created, nil
}

// UpdatePlan applies a partial update to the project's plan
func (s *CommunicationPlanService) UpdatePlan(projectID string, req dto.UpdateCommunicationPlanRequest) (models.CommunicationPlan, error) {
	plan, err := s.planRepo.FindByProjectID(projectID)
	if err != nil {
		return models.CommunicationPlan{}, err
	}

	if req.CommunicationObjectives != nil {
		plan.CommunicationObjectives = *req.CommunicationObjectives
	}
	if req.CommunicationStrategy != nil {
		plan.CommunicationStrategy = *req.CommunicationStrategy
	}
	if req.EscalationProcedures != nil {
		plan.EscalationProcedures = *req.EscalationProcedures
	}
	if req.CommunicationConstraints != nil {
		plan.CommunicationConstraints = *req.CommunicationConstraints
	}
	if req.CompanyGuidelines != nil {
		plan.CompanyGuidelines = *req.CompanyGuidelines
	}
	if req.AvailableTechnologies != nil {
		plan.AvailableTechnologies = models.StringList(*req.AvailableTechnologies)
	}
	if req.DocumentationStandards != nil {
		plan.DocumentationStandards = *req.DocumentationStandards
	}
	if req.ComplianceRequirements != nil {
		plan.ComplianceRequirements = *req.ComplianceRequirements
	}
	if req.InformationTypes != nil {
		plan.InformationTypes = models.StringList(*req.InformationTypes)
	}
	if req.ConfidentialityRequirements != nil {
		plan.ConfidentialityRequirements = *req.ConfidentialityRequirements
	}
	if req.LanguageConsiderations != nil {
		plan.LanguageConsiderations = *req.LanguageConsiderations
	}
	if req.CulturalConsiderations != nil {
		plan.CulturalConsiderations = *req.CulturalConsiderations
	}
	if req.CommunicationBudget != nil {
		plan.CommunicationBudget = req.CommunicationBudget
	}
	if req.BudgetBreakdown != nil {
		plan.BudgetBreakdown = *req.BudgetBreakdown
	}
	if req.FeedbackMechanisms != nil {
		plan.FeedbackMechanisms = *req.FeedbackMechanisms
	}
	if req.UpdateProcedures != nil {
		plan.UpdateProcedures = *req.UpdateProcedures
	}
	if req.EffectivenessMetrics != nil {
		plan.EffectivenessMetrics = *req.EffectivenessMetrics
	}

	if err := s.planRepo.Update(plan); err != nil {
		return models.CommunicationPlan{}, err
	}
	return plan, nil
}
