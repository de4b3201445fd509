package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Stakeholder represents a person or group with an interest in a project
type Stakeholder struct {
	ID                     string     `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID              string     `json:"project_id" gorm:"type:uuid;not null;index"`
	Name                   string     `json:"name" gorm:"not null"`
	Role                   string     `json:"role" gorm:"default:null"`
	Department             string     `json:"department" gorm:"default:null"`
	ContactInfo            string     `json:"contact_info" gorm:"default:null"`
	InformationNeeds       StringList `json:"information_needs" gorm:"type:text"`
	PreferredChannels      StringList `json:"preferred_channels" gorm:"type:text"`
	PreferredFormats       StringList `json:"preferred_formats" gorm:"type:text"`
	CommunicationFrequency string     `json:"communication_frequency" gorm:"default:null"`
	EscalationPath         string     `json:"escalation_path" gorm:"default:null"`
	DecisionAuthority      string     `json:"decision_authority" gorm:"default:null"`
	Timezone               string     `json:"timezone" gorm:"default:null"`
	Availability           string     `json:"availability" gorm:"default:null"`
}

func (s *Stakeholder) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
