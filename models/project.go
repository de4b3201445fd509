package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a managed initiative with its communication artifacts
type Project struct {
	ID                 string     `json:"id" gorm:"primaryKey;type:uuid"`
	Name               string     `json:"name" gorm:"not null"`
	Description        string     `json:"description" gorm:"default:null"`
	Charter            string     `json:"charter" gorm:"default:null"`
	Goals              string     `json:"goals" gorm:"default:null"`
	Phases             StringList `json:"phases" gorm:"type:text"`
	Milestones         StringList `json:"milestones" gorm:"type:text"`
	RiskManagementPlan string     `json:"risk_management_plan" gorm:"default:null"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Relations
	Stakeholders      []Stakeholder      `json:"stakeholders,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	CommunicationPlan *CommunicationPlan `json:"communication_plan,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
