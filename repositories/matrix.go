package repositories

import (
	"github.com/commplan-simple/models"
	"gorm.io/gorm"
)

// MatrixRepository handles database operations for communication matrix entries
type MatrixRepository struct {
	db *gorm.DB
}

// NewMatrixRepository creates a new matrix repository instance
func NewMatrixRepository(db *gorm.DB) *MatrixRepository {
	return &MatrixRepository{db: db}
}

// FindByID retrieves a matrix entry by its ID
func (r *MatrixRepository) FindByID(id string) (models.MatrixEntry, error) {
	var entry models.MatrixEntry
	result := r.db.First(&entry, "id = ?", id)
	return entry, result.Error
}

// FindByPlanID retrieves all matrix entries for a communication plan
func (r *MatrixRepository) FindByPlanID(planID string) ([]models.MatrixEntry, error) {
	var entries []models.MatrixEntry
	result := r.db.Where("communication_plan_id = ?", planID).Find(&entries)
	return entries, result.Error
}

// Create inserts a new matrix entry into the database
func (r *MatrixRepository) Create(entry models.MatrixEntry) (models.MatrixEntry, error) {
	result := r.db.Create(&entry)
	return entry, result.Error
}

// CreateBatch inserts matrix entries in one transaction. If any insert fails
// the whole batch is rolled back.
func (r *MatrixRepository) CreateBatch(entries []models.MatrixEntry) ([]models.MatrixEntry, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Update modifies an existing matrix entry
func (r *MatrixRepository) Update(entry models.MatrixEntry) error {
	result := r.db.Save(&entry)
	return result.Error
}

// Delete removes a matrix entry from the database
func (r *MatrixRepository) Delete(id string) error {
	result := r.db.Delete(&models.MatrixEntry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
