package testutil

import "github.com/commplan-simple/models"

// NewTestProject builds an unsaved project with sensible defaults
func NewTestProject(name string) models.Project {
	return models.Project{
		Name:        name,
		Description: "A project used in the test suite",
		Phases:      models.StringList{"Initiation", "Planning"},
		Milestones:  models.StringList{"Kickoff"},
	}
}

// NewTestStakeholder builds an unsaved stakeholder for a project
func NewTestStakeholder(projectID, name, role string) models.Stakeholder {
	return models.Stakeholder{
		ProjectID:         projectID,
		Name:              name,
		Role:              role,
		Department:        "Engineering",
		ContactInfo:       name + "@example.com",
		InformationNeeds:  models.StringList{"Status reports"},
		PreferredChannels: models.StringList{"Email"},
	}
}

// NewTestPlan builds an unsaved communication plan for a project
func NewTestPlan(projectID string) models.CommunicationPlan {
	return models.CommunicationPlan{
		ProjectID:               projectID,
		CommunicationObjectives: "Keep everyone informed",
		CommunicationStrategy:   "Weekly cadence with async updates",
		AvailableTechnologies:   models.StringList{"Email", "Chat"},
	}
}

// NewTestMatrixEntry builds an unsaved matrix entry for a plan
func NewTestMatrixEntry(planID string) models.MatrixEntry {
	return models.MatrixEntry{
		CommunicationPlanID: planID,
		WhoSender:           "Project Lead",
		WhoReceiver:         "Sponsor",
		WhatContent:         "Status report",
		WhenFrequency:       "Weekly",
		HowChannel:          "Email",
		Priority:            models.PriorityHigh,
	}
}
