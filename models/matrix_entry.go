package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority levels for a matrix entry
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MatrixEntry is one communication rule: who sends what, to whom, how, when, why
type MatrixEntry struct {
	ID                   string `json:"id" gorm:"primaryKey;type:uuid"`
	CommunicationPlanID  string `json:"communication_plan_id" gorm:"type:uuid;not null;index"`
	WhoSender            string `json:"who_sender" gorm:"default:null"`
	WhoReceiver          string `json:"who_receiver" gorm:"default:null"`
	WhatContent          string `json:"what_content" gorm:"default:null"`
	WhenFrequency        string `json:"when_frequency" gorm:"default:null"`
	WhenTiming           string `json:"when_timing" gorm:"default:null"`
	HowChannel           string `json:"how_channel" gorm:"default:null"`
	HowFormat            string `json:"how_format" gorm:"default:null"`
	WhyPurpose           string `json:"why_purpose" gorm:"default:null"`
	Priority             string `json:"priority" gorm:"type:varchar(20);default:null"`
	ConfirmationRequired bool   `json:"confirmation_required" gorm:"default:false"`
}

// TableName sets the table name for MatrixEntry model
func (MatrixEntry) TableName() string {
	return "communication_matrix"
}

func (m *MatrixEntry) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
