package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/commplan-simple/models"
	"github.com/commplan-simple/testutil"
)

func TestPlanRepo_CreateAndFindByProjectID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	project := testutil.NewTestProject("Planned")
	require.NoError(t, db.Create(&project).Error)

	created, err := repo.Create(testutil.NewTestPlan(project.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	found, err := repo.FindByProjectID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Keep everyone informed", found.CommunicationObjectives)
}

func TestPlanRepo_ExistsForProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	project := testutil.NewTestProject("Maybe Planned")
	require.NoError(t, db.Create(&project).Error)

	exists, err := repo.ExistsForProject(project.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.Create(testutil.NewTestPlan(project.ID))
	require.NoError(t, err)

	exists, err = repo.ExistsForProject(project.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestPlanRepo_FindByProjectIDWithMatrix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	project := testutil.NewTestProject("With Matrix")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)
	first := testutil.NewTestMatrixEntry(plan.ID)
	require.NoError(t, db.Create(&first).Error)
	second := testutil.NewTestMatrixEntry(plan.ID)
	second.WhatContent = "Risk summary"
	require.NoError(t, db.Create(&second).Error)

	found, err := repo.FindByProjectIDWithMatrix(project.ID)
	require.NoError(t, err)
	assert.Len(t, found.Matrix, 2)
}

func TestPlanRepo_FindByProjectID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	_, err := repo.FindByProjectID("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestPlanRepo_DeleteCascadesMatrix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	project := testutil.NewTestProject("Doomed Plan")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)
	entry := testutil.NewTestMatrixEntry(plan.ID)
	require.NoError(t, db.Create(&entry).Error)

	require.NoError(t, repo.Delete(plan.ID))

	var planCount, entryCount int64
	require.NoError(t, db.Model(&models.CommunicationPlan{}).Count(&planCount).Error)
	require.NoError(t, db.Model(&models.MatrixEntry{}).Count(&entryCount).Error)
	assert.Zero(t, planCount)
	assert.Zero(t, entryCount)
}

func TestPlanRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCommunicationPlanRepository(db)

	assert.ErrorIs(t, repo.Delete("missing"), gorm.ErrRecordNotFound)
}
