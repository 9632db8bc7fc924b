package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/netra/gallery/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func photoRequest(title string, photographerID, categoryID int64, featured bool) models.CreatePhotoRequest {
	return models.CreatePhotoRequest{
		Title:          title,
		ImageURL:       "https://img.example/" + title + ".jpg",
		ThumbnailURL:   "https://img.example/" + title + "_thumb.jpg",
		PhotographerID: ptr(photographerID),
		CategoryID:     ptr(categoryID),
		Featured:       ptr(featured),
	}
}

func exhibitionRequest(name, start, end string) models.CreateExhibitionRequest {
	return models.CreateExhibitionRequest{
		Name:        name,
		Description: "Annual showcase",
		Location:    "Main Hall",
		StartDate:   ptr(start),
		EndDate:     ptr(end),
		CoverImage:  "https://img.example/cover.jpg",
	}
}

func TestMemoryStore_IDsAreMonotonicPerKind(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	for i := 1; i <= 3; i++ {
		c, err := store.Categories.Add(ctx, models.CreateCategoryRequest{Name: fmt.Sprintf("Category %d", i)})
		require.NoError(t, err)
		assert.Equal(t, int64(i), c.ID)
	}

	// Other kinds keep their own counters
	p, err := store.Photographers.Add(ctx, models.CreatePhotographerRequest{Name: "Aanya", Bio: "bio", ProfileImage: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
}

func TestMemoryStore_GetByIDReturnsCreatedRecord(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore(fixedClock(now))

	created, err := store.Photos.Add(ctx, photoRequest("dawn", 1, 2, true))
	require.NoError(t, err)

	got, err := store.Photos.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, now, got.DateAdded)
	assert.Nil(t, got.Description)

	t.Run("unknown id returns nil", func(t *testing.T) {
		missing, err := store.Photos.GetByID(ctx, 999)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		got.Title = "changed"
		again, err := store.Photos.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "dawn", again.Title)
	})
}

func TestMemoryPhotoRepository_Filters(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	reqs := []models.CreatePhotoRequest{
		photoRequest("a", 1, 1, true),
		photoRequest("b", 2, 1, false),
		photoRequest("c", 1, 2, false),
		photoRequest("d", 3, 3, true),
	}
	for _, req := range reqs {
		_, err := store.Photos.Add(ctx, req)
		require.NoError(t, err)
	}

	titles := func(photos []*models.Photo) []string {
		out := make([]string, 0, len(photos))
		for _, p := range photos {
			out = append(out, p.Title)
		}
		return out
	}

	all, err := store.Photos.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, titles(all))

	byCategory, err := store.Photos.GetByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, titles(byCategory))

	byPhotographer, err := store.Photos.GetByPhotographer(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, titles(byPhotographer))

	featured, err := store.Photos.GetFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, titles(featured))

	t.Run("unknown reference yields empty list", func(t *testing.T) {
		none, err := store.Photos.GetByCategory(ctx, 42)
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})
}

func TestMemoryPhotographerRepository_GetFeatured(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	_, err := store.Photographers.Add(ctx, models.CreatePhotographerRequest{Name: "A", Bio: "b", ProfileImage: "x", Featured: ptr(true)})
	require.NoError(t, err)
	_, err = store.Photographers.Add(ctx, models.CreatePhotographerRequest{Name: "B", Bio: "b", ProfileImage: "x"})
	require.NoError(t, err)

	featured, err := store.Photographers.GetFeatured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "A", featured[0].Name)
}

func TestMemoryExhibitionRepository_GetCurrent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{"before every exhibition", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), ""},
		{"inside first", time.Date(2025, 4, 11, 9, 0, 0, 0, time.UTC), "Drishya"},
		{"exactly at start", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), "Drishya"},
		{"exactly at end", time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), "Drishya"},
		{"overlap picks earliest inserted", time.Date(2025, 4, 12, 12, 0, 0, 0, time.UTC), "Drishya"},
		{"inside second only", time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC), "Prakash"},
		{"after every exhibition", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(fixedClock(tt.now))
			_, err := store.Exhibitions.Add(ctx, exhibitionRequest("Drishya", "2025-04-10", "2025-04-13"))
			require.NoError(t, err)
			_, err = store.Exhibitions.Add(ctx, exhibitionRequest("Prakash", "2025-04-12", "2025-04-30"))
			require.NoError(t, err)

			current, err := store.Exhibitions.GetCurrent(ctx)
			require.NoError(t, err)
			if tt.expected == "" {
				assert.Nil(t, current)
				return
			}
			require.NotNil(t, current)
			assert.Equal(t, tt.expected, current.Name)
		})
	}
}

func TestMemoryExhibitionRepository_FailedBuildConsumesID(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	_, err := store.Exhibitions.Add(ctx, exhibitionRequest("broken", "not-a-date", "2025-04-13"))
	require.ErrorIs(t, err, models.ErrInvalidTimestamp)

	e, err := store.Exhibitions.Add(ctx, exhibitionRequest("ok", "2025-04-10", "2025-04-13"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), e.ID)

	all, err := store.Exhibitions.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemoryEventRepository_GetByExhibition(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	for _, ex := range []int64{1, 2, 1} {
		_, err := store.Events.Add(ctx, models.CreateEventRequest{
			ExhibitionID: ptr(ex),
			Name:         fmt.Sprintf("event for %d", ex),
			Date:         ptr("2025-04-11"),
			Time:         "11:00 AM",
		})
		require.NoError(t, err)
	}

	events, err := store.Events.GetByExhibition(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(1), events[0].ID)
	assert.Equal(t, int64(3), events[1].ID)
}

func TestMemoryUserRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	_, err := store.Users.Add(ctx, models.CreateUserRequest{Username: "admin", Password: "hash-1"})
	require.NoError(t, err)

	t.Run("exact match", func(t *testing.T) {
		u, err := store.Users.GetByUsername(ctx, "admin")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, int64(1), u.ID)
		assert.Equal(t, "hash-1", u.Password)
	})

	t.Run("case sensitive", func(t *testing.T) {
		u, err := store.Users.GetByUsername(ctx, "Admin")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestMemoryContactMessageRepository_Add(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 11, 8, 30, 0, 0, time.UTC)
	store := NewMemoryStore(fixedClock(now))

	m, err := store.ContactMessages.Add(ctx, models.CreateContactMessageRequest{
		Name:    "Ravi",
		Email:   "ravi@example.com",
		Subject: "Membership",
		Message: "How do I join the club?",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.ID)
	assert.Len(t, m.Reference, 36)
	assert.Equal(t, now, m.ReceivedAt)
}

func TestMemoryStore_ConcurrentAddsYieldDistinctIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(nil)

	const workers = 50
	var wg sync.WaitGroup
	ids := make(chan int64, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := store.Categories.Add(ctx, models.CreateCategoryRequest{Name: fmt.Sprintf("c%d", i)})
			if err == nil {
				ids <- c.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)

	all, err := store.Categories.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, workers)
	for i, c := range all {
		assert.Equal(t, int64(i+1), c.ID)
	}
}

func TestOpen(t *testing.T) {
	t.Run("defaults to memory", func(t *testing.T) {
		store, err := Open("", "", nil)
		require.NoError(t, err)
		assert.Equal(t, DriverMemory, store.Driver)
		assert.NoError(t, store.Ping(context.Background()))
		assert.NoError(t, store.Close())
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		_, err := Open("postgres", "", nil)
		assert.Error(t, err)
	})
}
