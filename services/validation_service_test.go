package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commplan-simple/models"
)

func completeProject() models.Project {
	plan := models.CommunicationPlan{
		CommunicationObjectives: "Keep stakeholders informed",
		CommunicationStrategy:   "Weekly reports plus ad-hoc escalation",
		Matrix: []models.MatrixEntry{
			{WhoSender: "Lead", WhoReceiver: "Sponsor", WhatContent: "Status"},
		},
	}
	return models.Project{
		Name:        "Website Relaunch",
		Description: "Full redesign and migration of the public website",
		Stakeholders: []models.Stakeholder{
			{Name: "Dana", Role: "Project Lead, Sponsor, Client"},
		},
		CommunicationPlan: &plan,
	}
}

func TestValidateProject_Complete(t *testing.T) {
	svc := NewValidationService()

	report := svc.ValidateProject(completeProject())

	assert.True(t, report.IsValid)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, 100.0, report.CompletenessScore)
	require.Len(t, report.Recommendations, 1)
	assert.Contains(t, report.Recommendations[0], "well structured and complete")
}

func TestValidateProject_EmptyProject(t *testing.T) {
	svc := NewValidationService()

	report := svc.ValidateProject(models.Project{Name: "ab"})

	assert.False(t, report.IsValid)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "Project name")
	assert.Contains(t, report.Errors[1], "stakeholder")

	// Applicable checks: name, description, stakeholder presence, the two
	// plan detail slots and the matrix check. None pass.
	assert.Equal(t, 0.0, report.CompletenessScore)
	assert.Contains(t, report.Recommendations[len(report.Recommendations)-1], "substantial additions")
}

func TestValidateProject_NameTrimmedBeforeLengthCheck(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	project.Name = "  ab  "
	report := svc.ValidateProject(project)

	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors[0], "at least 3 characters")
}

func TestValidateProject_IncompleteStakeholderWarning(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	incomplete := []models.Stakeholder{
		{Name: "Riley"},    // missing role
		{Role: "Observer"}, // missing name
	}
	project.Stakeholders = append(project.Stakeholders, incomplete...)
	report := svc.ValidateProject(project)

	assert.True(t, report.IsValid)
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "Riley")
	assert.Contains(t, report.Warnings[0], "Unnamed stakeholder")
}

func TestValidateProject_MissingRoleCategories(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	project.Stakeholders = []models.Stakeholder{{Name: "Dana", Role: "Sponsor"}}
	report := svc.ValidateProject(project)

	require.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Recommendations[0], "project lead")
	assert.Contains(t, report.Recommendations[0], "client")
	assert.NotContains(t, report.Recommendations[0], "sponsor,")
}

func TestValidateProject_NoPlanStillCountsPlanChecks(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	project.CommunicationPlan = nil
	report := svc.ValidateProject(project)

	// The plan detail checks and the matrix check stay in the denominator
	// even without a plan: 8 applicable checks, 5 pass.
	assert.True(t, report.IsValid)
	assert.Equal(t, 62.5, report.CompletenessScore)
	assert.Contains(t, report.Warnings[0], "Communication plan details are not filled in")
	assert.Contains(t, report.Recommendations[len(report.Recommendations)-1], "could be improved")
}

func TestValidateProject_EmptyMatrixWarning(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	project.CommunicationPlan.Matrix = nil
	report := svc.ValidateProject(project)

	// 8 applicable checks, only the matrix check fails.
	assert.True(t, report.IsValid)
	assert.Equal(t, 87.5, report.CompletenessScore)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "matrix is empty")
}

func TestValidateProject_MidScoreRecommendation(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	project.Description = "short"
	project.CommunicationPlan.CommunicationObjectives = ""
	project.CommunicationPlan.Matrix = nil
	report := svc.ValidateProject(project)

	// 8 applicable checks, 5 pass.
	assert.Equal(t, 62.5, report.CompletenessScore)
	assert.Contains(t, report.Recommendations[len(report.Recommendations)-1], "could be improved")
}

func TestValidateProject_DoesNotMutateInput(t *testing.T) {
	svc := NewValidationService()

	project := completeProject()
	_ = svc.ValidateProject(project)

	assert.Equal(t, "Website Relaunch", project.Name)
	require.NotNil(t, project.CommunicationPlan)
	assert.Len(t, project.CommunicationPlan.Matrix, 1)
}
