package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/commplan-simple/dto"
	"github.com/commplan-simple/testutil"
)

func strPtr(s string) *string { return &s }

func TestProjectService_CreateProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	created, err := svc.CreateProject(dto.CreateProjectRequest{
		Name:        "Data Warehouse",
		Description: "Consolidate reporting data",
		Phases:      []string{"Initiation", "Planning", "Execution"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Data Warehouse", created.Name)
	assert.Len(t, created.Phases, 3)
}

func TestProjectService_UpdateProject_PartialPatch(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	project := testutil.NewTestProject("Initial Name")
	project.Goals = "Ship on time"
	require.NoError(t, db.Create(&project).Error)

	updated, err := svc.UpdateProject(project.ID, dto.UpdateProjectRequest{
		Name: strPtr("Renamed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Name)
	// Fields not present in the patch keep their prior values.
	assert.Equal(t, project.Description, updated.Description)
	assert.Equal(t, "Ship on time", updated.Goals)
	assert.Equal(t, project.Phases, updated.Phases)
}

func TestProjectService_UpdateProject_ExplicitEmptyValue(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	project := testutil.NewTestProject("With Goals")
	project.Goals = "Ship on time"
	require.NoError(t, db.Create(&project).Error)

	updated, err := svc.UpdateProject(project.ID, dto.UpdateProjectRequest{
		Goals: strPtr(""),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Goals)
}

func TestProjectService_UpdateProject_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	_, err := svc.UpdateProject("missing", dto.UpdateProjectRequest{Name: strPtr("x")})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestProjectService_GetCompleteProject(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	project := testutil.NewTestProject("Aggregate")
	require.NoError(t, db.Create(&project).Error)
	stakeholder := testutil.NewTestStakeholder(project.ID, "Dana", "Project Lead")
	require.NoError(t, db.Create(&stakeholder).Error)
	plan := testutil.NewTestPlan(project.ID)
	require.NoError(t, db.Create(&plan).Error)
	entry := testutil.NewTestMatrixEntry(plan.ID)
	require.NoError(t, db.Create(&entry).Error)

	full, err := svc.GetCompleteProject(project.ID)
	require.NoError(t, err)
	assert.Len(t, full.Stakeholders, 1)
	require.NotNil(t, full.CommunicationPlan)
	assert.Len(t, full.CommunicationPlan.Matrix, 1)
}

func TestProjectService_DeleteProject_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewProjectService(db, zap.NewNop())

	err := svc.DeleteProject("missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
