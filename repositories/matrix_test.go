package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/commplan-simple/models"
	"github.com/commplan-simple/testutil"
)

func seedPlan(t *testing.T, db *gorm.DB) models.CommunicationPlan {
	t.Helper()

	project := testutil.NewTestProject("Matrix Host")
	require.NoError(t, db.Create(&project).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)
	return plan
}

func TestMatrixRepo_CreateAndFindByPlanID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewMatrixRepository(db)
	plan := seedPlan(t, db)

	created, err := repo.Create(testutil.NewTestMatrixEntry(plan.ID))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	entries, err := repo.FindByPlanID(plan.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.PriorityHigh, entries[0].Priority)
}

func TestMatrixRepo_CreateBatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewMatrixRepository(db)
	plan := seedPlan(t, db)

	batch := []models.MatrixEntry{
		testutil.NewTestMatrixEntry(plan.ID),
		testutil.NewTestMatrixEntry(plan.ID),
	}
	batch[1].WhatContent = "Escalation notice"

	created, err := repo.CreateBatch(batch)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.NotEmpty(t, created[0].ID)
	assert.NotEmpty(t, created[1].ID)

	var count int64
	require.NoError(t, db.Model(&models.MatrixEntry{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestMatrixRepo_CreateBatch_RollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewMatrixRepository(db)
	plan := seedPlan(t, db)

	first := testutil.NewTestMatrixEntry(plan.ID)
	second := testutil.NewTestMatrixEntry(plan.ID)
	first.ID = "duplicate-id"
	second.ID = "duplicate-id" // forces a primary key collision

	_, err := repo.CreateBatch([]models.MatrixEntry{first, second})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.MatrixEntry{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestMatrixRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewMatrixRepository(db)
	plan := seedPlan(t, db)

	entry, err := repo.Create(testutil.NewTestMatrixEntry(plan.ID))
	require.NoError(t, err)

	entry.Priority = models.PriorityLow
	entry.ConfirmationRequired = true
	require.NoError(t, repo.Update(entry))

	stored, err := repo.FindByID(entry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityLow, stored.Priority)
	assert.True(t, stored.ConfirmationRequired)
}

func TestMatrixRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewMatrixRepository(db)

	assert.ErrorIs(t, repo.Delete("missing"), gorm.ErrRecordNotFound)
}
