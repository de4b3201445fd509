package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunicationPlan is the organizational framework governing how a project
// communicates. A project has at most one plan (unique index on ProjectID).
type CommunicationPlan struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string `json:"project_id" gorm:"type:uuid;not null;uniqueIndex"`

	// Core plan content
	CommunicationObjectives  string `json:"communication_objectives" gorm:"default:null"`
	CommunicationStrategy    string `json:"communication_strategy" gorm:"default:null"`
	EscalationProcedures     string `json:"escalation_procedures" gorm:"default:null"`
	CommunicationConstraints string `json:"communication_constraints" gorm:"default:null"`

	// Organizational framework
	CompanyGuidelines      string     `json:"company_guidelines" gorm:"default:null"`
	AvailableTechnologies  StringList `json:"available_technologies" gorm:"type:text"`
	DocumentationStandards string     `json:"documentation_standards" gorm:"default:null"`
	ComplianceRequirements string     `json:"compliance_requirements" gorm:"default:null"`

	// Communication specifics
	InformationTypes            StringList `json:"information_types" gorm:"type:text"`
	ConfidentialityRequirements string     `json:"confidentiality_requirements" gorm:"default:null"`
	LanguageConsiderations      string     `json:"language_considerations" gorm:"default:null"`
	CulturalConsiderations      string     `json:"cultural_considerations" gorm:"default:null"`
	CommunicationBudget         *float64   `json:"communication_budget" gorm:"default:null"`
	BudgetBreakdown             string     `json:"budget_breakdown" gorm:"default:null"`

	// Process definition
	FeedbackMechanisms   string `json:"feedback_mechanisms" gorm:"default:null"`
	UpdateProcedures     string `json:"update_procedures" gorm:"default:null"`
	EffectivenessMetrics string `json:"effectiveness_metrics" gorm:"default:null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Matrix []MatrixEntry `json:"matrix,omitempty" gorm:"foreignKey:CommunicationPlanID;constraint:OnDelete:CASCADE"`
}

func (p *CommunicationPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
