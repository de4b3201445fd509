package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/models"
	"github.com/commplan-simple/testutil"
)

func TestPlanService_CreatePlan(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	project := testutil.NewTestProject("Plan Target")
	require.NoError(t, db.Create(&project).Error)

	budget := 2500.0
	created, err := svc.CreatePlan(project.ID, dto.CreateCommunicationPlanRequest{
		CommunicationObjectives: "Keep stakeholders aligned",
		CommunicationStrategy:   "Weekly status mails",
		AvailableTechnologies:   []string{"Email", "Chat"},
		CommunicationBudget:     &budget,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, project.ID, created.ProjectID)
	require.NotNil(t, created.CommunicationBudget)
	assert.Equal(t, 2500.0, *created.CommunicationBudget)
}

func TestPlanService_CreatePlan_ProjectNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	_, err := svc.CreatePlan("missing", dto.CreateCommunicationPlanRequest{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanService_CreatePlan_Duplicate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	project := testutil.NewTestProject("One Plan Only")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)

	_, err := svc.CreatePlan(project.ID, dto.CreateCommunicationPlanRequest{
		CommunicationObjectives: "Replacement attempt",
	})
	assert.ErrorIs(t, err, ErrPlanExists)

	// The existing plan is untouched.
	var stored models.CommunicationPlan
	require.NoError(t, db.Where("project_id = ?", project.ID).First(&stored).Error)
	assert.Equal(t, plan.ID, stored.ID)
	assert.Equal(t, "Keep everyone informed", stored.CommunicationObjectives)
}

func TestPlanService_UpdatePlan_PartialPatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	project := testutil.NewTestProject("Patchable")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)

	strategy := "Daily standups"
	technologies := []string{"Video calls"}
	updated, err := svc.UpdatePlan(project.ID, dto.UpdateCommunicationPlanRequest{
		CommunicationStrategy: &strategy,
		AvailableTechnologies: &technologies,
	})
	require.NoError(t, err)

	assert.Equal(t, "Daily standups", updated.CommunicationStrategy)
	assert.Equal(t, models.StringList{"Video calls"}, updated.AvailableTechnologies)
	// Untouched fields keep their prior values.
	assert.Equal(t, "Keep everyone informed", updated.CommunicationObjectives)
}

func TestPlanService_UpdatePlan_NoPlan(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	project := testutil.NewTestProject("Planless")
	require.NoError(t, db.Create(&project).Error)

	_, err := svc.UpdatePlan(project.ID, dto.UpdateCommunicationPlanRequest{})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanService_GetPlanForProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewCommunicationPlanService(db, zap.NewNop())

	project := testutil.NewTestProject("With Matrix")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)
	entry := testutil.NewTestMatrixEntry(plan.ID)
	require.NoError(t, db.Create(&entry).Error)

	found, err := svc.GetPlanForProject(project.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, found.ID)
	require.Len(t, found.Matrix, 1)
	assert.Equal(t, "Status report", found.Matrix[0].WhatContent)
}
