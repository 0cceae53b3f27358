package favorites_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"suggestbox/internal/catalog"
	"suggestbox/internal/favorites"
	"suggestbox/internal/favorites/mocks"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestService_Add_SnapshotsItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	mockItems := mocks.NewMockItemSource(ctrl)
	svc := favorites.NewService(mockRepo, mockItems)

	item := catalog.Item{
		ID: "i1", Name: "Elden Ring", NameAr: "إلدن رينج",
		Category: "games", Year: intPtr(2022), Genre: strPtr("RPG/أكشن"),
	}

	mockRepo.EXPECT().ExistsByItemID(gomock.Any(), "i1").Return(false, nil)
	mockItems.EXPECT().GetItem(gomock.Any(), "games", "i1").Return(item, nil)

	var inserted favorites.Favorite
	mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f favorites.Favorite) error {
			inserted = f
			return nil
		})

	fav, err := svc.Add(context.Background(), "i1", "games")
	require.NoError(t, err)
	assert.Equal(t, inserted, fav)

	assert.NotEmpty(t, fav.ID)
	assert.NotEqual(t, fav.ID, fav.ItemID)
	assert.Equal(t, "i1", fav.ItemID)
	assert.Equal(t, "Elden Ring", fav.Name)
	assert.Equal(t, "إلدن رينج", fav.NameAr)
	assert.Equal(t, 2022, *fav.Year)
	assert.Equal(t, "RPG/أكشن", *fav.Genre)
	assert.Equal(t, "https://www.google.com/search?q=Elden+Ring+game", fav.ExternalURL)
	assert.WithinDuration(t, time.Now().UTC(), fav.CreatedAt, 5*time.Second)
}

func TestService_Add_Duplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	mockItems := mocks.NewMockItemSource(ctrl)
	svc := favorites.NewService(mockRepo, mockItems)

	mockRepo.EXPECT().ExistsByItemID(gomock.Any(), "i1").Return(true, nil)

	_, err := svc.Add(context.Background(), "i1", "games")
	assert.ErrorIs(t, err, favorites.ErrDuplicate)
}

func TestService_Add_ItemNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	mockItems := mocks.NewMockItemSource(ctrl)
	svc := favorites.NewService(mockRepo, mockItems)

	mockRepo.EXPECT().ExistsByItemID(gomock.Any(), "x").Return(false, nil)
	mockItems.EXPECT().GetItem(gomock.Any(), "games", "x").Return(catalog.Item{}, catalog.ErrItemNotFound)

	_, err := svc.Add(context.Background(), "x", "games")
	assert.ErrorIs(t, err, catalog.ErrItemNotFound)
}

func TestService_ExistsLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	mockItems := mocks.NewMockItemSource(ctrl)
	svc := favorites.NewService(mockRepo, mockItems)

	ctx := context.Background()
	item := catalog.Item{ID: "i1", Name: "Hades", Category: "games"}

	gomock.InOrder(
		mockRepo.EXPECT().ExistsByItemID(ctx, "i1").Return(false, nil),
		mockRepo.EXPECT().ExistsByItemID(ctx, "i1").Return(false, nil),
		mockItems.EXPECT().GetItem(ctx, "games", "i1").Return(item, nil),
		mockRepo.EXPECT().Insert(ctx, gomock.Any()).Return(nil),
		mockRepo.EXPECT().ExistsByItemID(ctx, "i1").Return(true, nil),
		mockRepo.EXPECT().DeleteByItemID(ctx, "i1").Return(nil),
		mockRepo.EXPECT().ExistsByItemID(ctx, "i1").Return(false, nil),
	)

	exists, err := svc.Exists(ctx, "i1")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.Add(ctx, "i1", "games")
	require.NoError(t, err)

	exists, err = svc.Exists(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, svc.Remove(ctx, "i1"))

	exists, err = svc.Exists(ctx, "i1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestService_Remove_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := favorites.NewService(mockRepo, mocks.NewMockItemSource(ctrl))

	mockRepo.EXPECT().DeleteByItemID(gomock.Any(), "ghost").Return(favorites.ErrNotFound)

	err := svc.Remove(context.Background(), "ghost")
	assert.ErrorIs(t, err, favorites.ErrNotFound)
}

func TestService_List_CappedAtLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := mocks.NewMockRepository(ctrl)
	svc := favorites.NewService(mockRepo, mocks.NewMockItemSource(ctrl))

	mockRepo.EXPECT().List(gomock.Any(), favorites.ListLimit).Return([]favorites.Favorite{}, nil)

	_, err := svc.List(context.Background())
	assert.NoError(t, err)
}
