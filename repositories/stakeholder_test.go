package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commplan-simple/models"
	"github.com/commplan-simple/testutil"
)

func TestStakeholderRepo_FindByProjectID(t *testing.T) {
	db := testutil.NewTestDB(t)
	projectRepo := NewProjectRepository(db)
	repo := NewStakeholderRepository(db)

	project, err := projectRepo.Create(testutil.NewTestProject("Team"))
	require.NoError(t, err)

	_, err = repo.Create(testutil.NewTestStakeholder(project.ID, "Ada", "Project Lead"))
	require.NoError(t, err)
	_, err = repo.Create(testutil.NewTestStakeholder(project.ID, "Grace", "Sponsor"))
	require.NoError(t, err)

	stakeholders, err := repo.FindByProjectID(project.ID)
	require.NoError(t, err)
	assert.Len(t, stakeholders, 2)
}

func TestStakeholderRepo_CreateBatch_RollsBackOnFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	projectRepo := NewProjectRepository(db)
	repo := NewStakeholderRepository(db)

	project, err := projectRepo.Create(testutil.NewTestProject("Batch"))
	require.NoError(t, err)

	first := testutil.NewTestStakeholder(project.ID, "Ada", "Project Lead")
	first.ID = "duplicate-id"
	second := testutil.NewTestStakeholder(project.ID, "Grace", "Sponsor")
	second.ID = "duplicate-id" // forces a primary key collision

	_, err = repo.CreateBatch([]models.Stakeholder{first, second})
	require.Error(t, err)

	// Nothing from the failed batch may remain
	stakeholders, err := repo.FindByProjectID(project.ID)
	require.NoError(t, err)
	assert.Empty(t, stakeholders)
}

func TestStakeholderRepo_ListFieldsRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	projectRepo := NewProjectRepository(db)
	repo := NewStakeholderRepository(db)

	project, err := projectRepo.Create(testutil.NewTestProject("Lists"))
	require.NoError(t, err)

	stakeholder := testutil.NewTestStakeholder(project.ID, "Ada", "Project Lead")
	stakeholder.PreferredChannels = models.StringList{"Email", "Chat", "Phone"}
	created, err := repo.Create(stakeholder)
	require.NoError(t, err)

	fetched, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"Email", "Chat", "Phone"}, fetched.PreferredChannels)
}
