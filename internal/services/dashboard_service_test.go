package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"konkanbliss/internal/models/request_models"
	"konkanbliss/internal/services"
	"konkanbliss/pkg/localstore"
	"konkanbliss/pkg/utils"
)

func newDashboard() services.DashboardServiceInterface {
	return services.NewDashboardService(localstore.NewMemoryStore())
}

func TestListItinerariesSeedsOnFirstRead(t *testing.T) {
	svc := newDashboard()

	items, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Konkan Beach Hopping", items[0].Title)
	assert.Equal(t, "completed", items[0].Status)

	// Second read comes from the store, not a fresh seed.
	again, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	assert.Equal(t, items, again)
}

func TestAddItineraryPersists(t *testing.T) {
	svc := newDashboard()

	added, err := svc.AddItinerary("acct-1", request_models.SaveItineraryRequest{
		Title:        "Solo Monsoon Trek",
		Duration:     "2 days",
		Destinations: []string{"Amboli"},
		Budget:       "Budget (₹2,000 - ₹5,000)",
		GroupType:    "Solo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "draft", added.Status)
	assert.Equal(t, added.CreatedAt, added.LastModified)

	items, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, added, items[3])
}

func TestAddItineraryValidation(t *testing.T) {
	svc := newDashboard()

	_, err := svc.AddItinerary("acct-1", request_models.SaveItineraryRequest{})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.AddItinerary("acct-1", request_models.SaveItineraryRequest{Title: "X", Status: "archived"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRemoveItineraryUnknownIDIsNoOp(t *testing.T) {
	svc := newDashboard()

	before, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItinerary("acct-1", "does-not-exist"))

	after, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRemoveItineraryDropsOnlyTheTarget(t *testing.T) {
	svc := newDashboard()

	_, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItinerary("acct-1", "2"))

	after, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, "1", after[0].ID)
	assert.Equal(t, "3", after[1].ID)
}

func TestDashboardCollectionsAreAccountScoped(t *testing.T) {
	svc := newDashboard()

	_, err := svc.AddItinerary("acct-1", request_models.SaveItineraryRequest{Title: "Private Plan"})
	require.NoError(t, err)

	mine, err := svc.ListItineraries("acct-1")
	require.NoError(t, err)
	theirs, err := svc.ListItineraries("acct-2")
	require.NoError(t, err)

	assert.Len(t, mine, 4)
	assert.Len(t, theirs, 3)
}

func TestListExperiencesSeedsOnFirstRead(t *testing.T) {
	svc := newDashboard()

	items, err := svc.ListExperiences("acct-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Amazing Scuba Diving at Tarkarli", items[0].Title)
	assert.Equal(t, 5, items[0].Rating)
}

func TestAddExperienceDefaultsRating(t *testing.T) {
	svc := newDashboard()

	added, err := svc.AddExperience("acct-1", request_models.AddExperienceRequest{
		Title:    "Dolphin Watching",
		Location: "Devbagh Beach",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, added.Rating)

	_, err = svc.AddExperience("acct-1", request_models.AddExperienceRequest{
		Title:    "Bad Rating",
		Location: "Anywhere",
		Rating:   9,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.AddExperience("acct-1", request_models.AddExperienceRequest{Title: "No Location"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestRemoveExperienceUnknownIDIsNoOp(t *testing.T) {
	svc := newDashboard()

	before, err := svc.ListExperiences("acct-1")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveExperience("acct-1", "404"))

	after, err := svc.ListExperiences("acct-1")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
