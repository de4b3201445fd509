package repositories

import (
	"github.com/commplan-simple/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, result.Error
}

// FindComplete retrieves a project with stakeholders, plan and matrix entries
func (r *ProjectRepository) FindComplete(id string) (models.Project, error) {
	var project models.Project
	result := r.db.
		Preload("Stakeholders").
		Preload("CommunicationPlan").
		Preload("CommunicationPlan.Matrix").
		First(&project, "id = ?", id)
	return project, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := r.db.Save(&project)
	return result.Error
}

// Delete removes a project and cascades to its stakeholders, plan and matrix
// entries inside one transaction, so no orphan rows remain on any store.
func (r *ProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var plan models.CommunicationPlan
		err := tx.First(&plan, "project_id = ?", id).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
		if err == nil {
			if err := tx.Where("communication_plan_id = ?", plan.ID).Delete(&models.MatrixEntry{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&plan).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Stakeholder{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// Exists checks if a project exists
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return r.db
}
