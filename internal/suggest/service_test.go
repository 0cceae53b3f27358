package suggest_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/catalog"
	"suggestbox/internal/suggest"
	"suggestbox/internal/suggest/mocks"
)

func strPtr(v string) *string { return &v }

func TestService_Suggest_ReturnsItemAndTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	item := catalog.Item{ID: "i1", Name: "Hades", Category: "games"}
	mockRepo.EXPECT().Count(gomock.Any(), "games", "").Return(100, nil)
	mockRepo.EXPECT().PickRandom(gomock.Any(), "games", "", nil).Return(item, nil)

	result, err := svc.Suggest(context.Background(), "games", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "i1", result.Suggestion.ID)
	assert.Equal(t, 100, result.TotalInCategory)
	assert.Equal(t, "https://www.google.com/search?q=Hades+game", result.Suggestion.ExternalURL)
}

func TestService_Suggest_GenreFilterPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	item := catalog.Item{ID: "m1", Name: "Se7en", Category: "movies", Genre: strPtr("جريمة/غموض")}
	mockRepo.EXPECT().Count(gomock.Any(), "movies", "جريمة/غموض").Return(3, nil)
	mockRepo.EXPECT().PickRandom(gomock.Any(), "movies", "جريمة/غموض", []string{"m2"}).Return(item, nil)

	result, err := svc.Suggest(context.Background(), "movies", "جريمة/غموض", []string{"m2"})
	require.NoError(t, err)
	// Total counts the genre-filtered universe before exclusions.
	assert.Equal(t, 3, result.TotalInCategory)
	assert.Equal(t, "جريمة/غموض", *result.Suggestion.Genre)
}

func TestService_Suggest_ExhaustionResetsExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	excluded := []string{"i1", "i2", "i3"}
	item := catalog.Item{ID: "i2", Name: "Celeste", Category: "games"}

	mockRepo.EXPECT().Count(gomock.Any(), "games", "").Return(3, nil)
	// Every item excluded: first pick finds nothing, the retry drops the
	// exclusion set and must succeed.
	mockRepo.EXPECT().PickRandom(gomock.Any(), "games", "", excluded).Return(catalog.Item{}, suggest.ErrNoneAvailable)
	mockRepo.EXPECT().PickRandom(gomock.Any(), "games", "", nil).Return(item, nil)

	result, err := svc.Suggest(context.Background(), "games", "", excluded)
	require.NoError(t, err)
	assert.Equal(t, "i2", result.Suggestion.ID)
	assert.Equal(t, 3, result.TotalInCategory)
}

func TestService_Suggest_EmptyUniverse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	mockRepo.EXPECT().Count(gomock.Any(), "games", "سباق").Return(0, nil)

	_, err := svc.Suggest(context.Background(), "games", "سباق", nil)
	assert.ErrorIs(t, err, suggest.ErrNoSuggestions)
}

func TestService_Suggest_NoResetWithoutExclusions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	// Count raced against a concurrent delete: pick finds nothing and
	// there is no exclusion set to drop, so the caller gets the
	// no-suggestions error rather than a second identical query.
	mockRepo.EXPECT().Count(gomock.Any(), "games", "").Return(1, nil)
	mockRepo.EXPECT().PickRandom(gomock.Any(), "games", "", nil).Return(catalog.Item{}, suggest.ErrNoneAvailable)

	_, err := svc.Suggest(context.Background(), "games", "", nil)
	assert.ErrorIs(t, err, suggest.ErrNoSuggestions)
}

func TestService_Suggest_UnknownCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	_, err := svc.Suggest(context.Background(), "books", "", nil)
	assert.ErrorIs(t, err, catalog.ErrUnknownCategory)
}

func TestService_Suggest_RepoErrorWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := suggest.NewService(mockRepo)

	boom := errors.New("connection reset")
	mockRepo.EXPECT().Count(gomock.Any(), "games", "").Return(0, boom)

	_, err := svc.Suggest(context.Background(), "games", "", nil)
	assert.ErrorIs(t, err, boom)
}
