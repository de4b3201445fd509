package services

import (
	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MatrixService handles business logic for communication matrix entries
type MatrixService struct {
	matrixRepo *repositories.MatrixRepository
	planRepo   *repositories.CommunicationPlanRepository
	logger     *zap.Logger
}

// NewMatrixService creates a new matrix service instance
func NewMatrixService(db *gorm.DB, logger *zap.Logger) *MatrixService {
	return &MatrixService{
		matrixRepo: repositories.NewMatrixRepository(db),
		planRepo:   repositories.NewCommunicationPlanRepository(db),
		logger:     logger,
	}
}

// ListEntries retrieves all matrix entries of a communication plan
func (s *MatrixService) ListEntries(planID string) ([]models.MatrixEntry, error) {
	if err := s.requirePlan(planID); err != nil {
		return nil, err
	}
	return s.matrixRepo.FindByPlanID(planID)
}

// CreateEntry creates a matrix entry under a communication plan
func (s *MatrixService) CreateEntry(planID string, req dto.CreateMatrixEntryRequest) (models.MatrixEntry, error) {
	if err := s.requirePlan(planID); err != nil {
		return models.MatrixEntry{}, err
	}

	created, err := s.matrixRepo.Create(entryFromRequest(planID, req))
	if err != nil {
		s.logger.Error("Failed to create matrix entry", zap.Error(err))
		return models.MatrixEntry{}, err
	}
	return created, nil
}

// CreateEntriesBulk creates a batch of matrix entries in one transaction.
// If any item fails the entire batch is rolled back.
func (s *MatrixService) CreateEntriesBulk(planID string, req dto.BulkMatrixRequest) ([]models.MatrixEntry, error) {
	if err := s.requirePlan(planID); err != nil {
		return nil, err
	}

	entries := make([]models.MatrixEntry, 0, len(req.Entries))
	for _, item := range req.Entries {
		entries = append(entries, entryFromRequest(planID, item))
	}

	created, err := s.matrixRepo.CreateBatch(entries)
	if err != nil {
		s.logger.Error("Failed to create matrix entry batch",
			zap.String("plan_id", planID),
			zap.Int("count", len(entries)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Matrix entry batch created",
		zap.String("plan_id", planID),
		zap.Int("count", len(created)),
	)
	return created, nil
}

// UpdateEntry applies a partial update to a matrix entry
func (s *MatrixService) UpdateEntry(id string, req dto.UpdateMatrixEntryRequest) (models.MatrixEntry, error) {
	entry, err := s.matrixRepo.FindByID(id)
	if err != nil {
		return models.MatrixEntry{}, err
	}

	if req.WhoSender != nil {
		entry.WhoSender = *req.WhoSender
	}
	if req.WhoReceiver != nil {
		entry.WhoReceiver = *req.WhoReceiver
	}
	if req.WhatContent != nil {
		entry.WhatContent = *req.WhatContent
	}
	if req.WhenFrequency != nil {
		entry.WhenFrequency = *req.WhenFrequency
	}
	if req.WhenTiming != nil {
		entry.WhenTiming = *req.WhenTiming
	}
	if req.HowChannel != nil {
		entry.HowChannel = *req.HowChannel
	}
	if req.HowFormat != nil {
		entry.HowFormat = *req.HowFormat
	}
	if req.WhyPurpose != nil {
		entry.WhyPurpose = *req.WhyPurpose
	}
	if req.Priority != nil {
		entry.Priority = *req.Priority
	}
	if req.ConfirmationRequired != nil {
		entry.ConfirmationRequired = *req.ConfirmationRequired
	}

	if err := s.matrixRepo.Update(entry); err != nil {
		return models.MatrixEntry{}, err
	}
	return entry, nil
}

// DeleteEntry removes a matrix entry
func (s *MatrixService) DeleteEntry(id string) error {
	return s.matrixRepo.Delete(id)
}

func (s *MatrixService) requirePlan(planID string) error {
	_, err := s.planRepo.FindByID(planID)
	return err
}

func entryFromRequest(planID string, req dto.CreateMatrixEntryRequest) models.MatrixEntry {
	return models.MatrixEntry{
		CommunicationPlanID:  planID,
		WhoSender:            req.WhoSender,
		WhoReceiver:          req.WhoReceiver,
		WhatContent:          req.WhatContent,
		WhenFrequency:        req.WhenFrequency,
		WhenTiming:           req.WhenTiming,
		HowChannel:           req.HowChannel,
		HowFormat:            req.HowFormat,
		WhyPurpose:           req.WhyPurpose,
		Priority:             req.Priority,
		ConfirmationRequired: req.ConfirmationRequired,
	}
}
