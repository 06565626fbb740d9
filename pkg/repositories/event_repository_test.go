package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiet-labs/festbot/pkg/models"
	"github.com/asiet-labs/festbot/pkg/testhelpers"
)

func TestEventRepositoryRoundTrip(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	events := []*models.Event{
		{
			ID:           "ev1",
			Name:         "Theme Show",
			Date:         "12/03",
			Time:         "6 PM",
			Venue:        "Auditorium",
			Fest:         "brahma",
			Category:     "cultural",
			Coordinators: []string{"Anjali", "Rahul"},
			Phone:        "9876543210",
		},
		{Name: "Robo Wars", Fest: "ashwamedha", Category: "technical"},
	}
	require.NoError(t, repo.ReplaceAll(ctx, events))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Order follows insertion position.
	assert.Equal(t, "Theme Show", loaded[0].Name)
	assert.Equal(t, "Robo Wars", loaded[1].Name)
	assert.Equal(t, []string{"Anjali", "Rahul"}, loaded[0].Coordinators)
	assert.Equal(t, "Auditorium", loaded[0].Venue)

	// Missing ID gets a derived one.
	assert.NotEmpty(t, loaded[1].ID)
}

func TestEventRepositoryReplaceAllClearsPrevious(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*models.Event{
		{ID: "old", Name: "Old Event"},
	}))
	require.NoError(t, repo.ReplaceAll(ctx, []*models.Event{
		{ID: "new", Name: "New Event"},
	}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New Event", loaded[0].Name)
}

func TestEventRepositoryReplaceAllSkipsUnnamed(t *testing.T) {
	testDB := testhelpers.GetTestDB(t)
	repo := NewEventRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, []*models.Event{
		{ID: "ev1", Name: "Theme Show"},
		nil,
		{ID: "ev2", Name: ""},
	}))

	loaded, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
}
