package repositories

import (
	"github.com/commplan-simple/models"
	"gorm.io/gorm"
)

// CommunicationPlanRepository handles database operations for communication plans
type CommunicationPlanRepository struct {
	db *gorm.DB
}

// NewCommunicationPlanRepository creates a new communication plan repository instance
func NewCommunicationPlanRepository(db *gorm.DB) *CommunicationPlanRepository {
	return &CommunicationPlanRepository{db: db}
}

// FindByID retrieves a plan by its ID
func (r *CommunicationPlanRepository) FindByID(id string) (models.CommunicationPlan, error) {
	var plan models.CommunicationPlan
	result := r.db.First(&plan, "id = ?", id)
	return plan, result.Error
}

// FindByProjectID retrieves the plan belonging to a project
func (r *CommunicationPlanRepository) FindByProjectID(projectID string) (models.CommunicationPlan, error) {
	var plan models.CommunicationPlan
	result := r.db.First(&plan, "project_id = ?", projectID)
	return plan, result.Error
}

// FindByProjectIDWithMatrix retrieves the plan with its matrix entries preloaded
func (r *CommunicationPlanRepository) FindByProjectIDWithMatrix(projectID string) (models.CommunicationPlan, error) {
	var plan models.CommunicationPlan
	result := r.db.Preload("Matrix").First(&plan, "project_id = ?", projectID)
	return plan, result.Error
}

// ExistsForProject checks whether a project already has a plan
func (r *CommunicationPlanRepository) ExistsForProject(projectID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.CommunicationPlan{}).Where("project_id = ?", projectID).Count(&count).Error
	return count > 0, err
}

// Create inserts a new plan into the database
func (r *CommunicationPlanRepository) Create(plan models.CommunicationPlan) (models.CommunicationPlan, error) {
	result := r.db.Create(&plan)
	return plan, result.Error
}

// Update modifies an existing plan
func (r *CommunicationPlanRepository) Update(plan models.CommunicationPlan) error {
	result := r.db.Save(&plan)
	return result.Error
}

// Delete removes a plan and its matrix entries
func (r *CommunicationPlanRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("communication_plan_id = ?", id).Delete(&models.MatrixEntry{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.CommunicationPlan{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
