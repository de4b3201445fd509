package repositories

import (
	"github.com/commplan-simple/models"
	"gorm.io/gorm"
)

// StakeholderRepository handles database operations for stakeholders
type StakeholderRepository struct {
	db *gorm.DB
}

// NewStakeholderRepository creates a new stakeholder repository instance
func NewStakeholderRepository(db *gorm.DB) *StakeholderRepository {
	return &StakeholderRepository{db: db}
}

// FindByID retrieves a stakeholder by its ID
func (r *StakeholderRepository) FindByID(id string) (models.Stakeholder, error) {
	var stakeholder models.Stakeholder
	result := r.db.First(&stakeholder, "id = ?", id)
	return stakeholder, result.Error
}

// FindByProjectID retrieves all stakeholders for a project
func (r *StakeholderRepository) FindByProjectID(projectID string) ([]models.Stakeholder, error) {
	var stakeholders []models.Stakeholder
	result := r.db.Where("project_id = ?", projectID).Find(&stakeholders)
	return stakeholders, result.Error
}

// Create inserts a new stakeholder into the database
func (r *StakeholderRepository) Create(stakeholder models.Stakeholder) (models.Stakeholder, error) {
	result := r.db.Create(&stakeholder)
	return stakeholder, result.Error
}

// CreateBatch inserts stakeholders in one transaction. If any insert fails the
// whole batch is rolled back.
func (r *StakeholderRepository) CreateBatch(stakeholders []models.Stakeholder) ([]models.Stakeholder, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range stakeholders {
			if err := tx.Create(&stakeholders[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stakeholders, nil
}

// Update modifies an existing stakeholder
func (r *StakeholderRepository) Update(stakeholder models.Stakeholder) error {
	result := r.db.Save(&stakeholder)
	return result.Error
}

// Delete removes a stakeholder from the database
func (r *StakeholderRepository) Delete(id string) error {
	result := r.db.Delete(&models.Stakeholder{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
