package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

type published struct {
	kind string
	id   int64
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) PublishCreated(kind string, id int64, record interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{kind: kind, id: id})
}

func newTestGallery(t *testing.T, now time.Time) (*GalleryService, *recordingPublisher) {
	t.Helper()
	store := repository.NewMemoryStore(func() time.Time { return now })
	pub := &recordingPublisher{}
	return NewGalleryService(store, pub), pub
}

func validPhoto() models.CreatePhotoRequest {
	return models.CreatePhotoRequest{
		Title:          "Mountain Serenity",
		ImageURL:       "https://images.example/mountain.jpg",
		ThumbnailURL:   "https://images.example/mountain_thumb.jpg",
		PhotographerID: ptr(int64(2)),
		CategoryID:     ptr(int64(2)),
	}
}

func fieldNames(err error) []string {
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	names := make([]string, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		names = append(names, fe.Field)
	}
	return names
}

func TestGalleryService_CreatePhoto(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 4, 11, 9, 30, 0, 0, time.UTC)

	t.Run("stores photo with server-assigned date", func(t *testing.T) {
		svc, pub := newTestGallery(t, now)

		photo, err := svc.CreatePhoto(ctx, validPhoto())
		require.NoError(t, err)
		assert.Equal(t, int64(1), photo.ID)
		assert.False(t, photo.Featured)
		assert.Equal(t, now, photo.DateAdded)

		got, err := svc.GetPhoto(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, photo, got)

		assert.Equal(t, []published{{kind: models.KindPhoto, id: 1}}, pub.events)
	})

	t.Run("missing imageUrl is rejected by field name", func(t *testing.T) {
		svc, pub := newTestGallery(t, now)
		req := validPhoto()
		req.ImageURL = ""

		_, err := svc.CreatePhoto(ctx, req)
		require.Error(t, err)
		assert.Equal(t, []string{"imageUrl"}, fieldNames(err))
		assert.Empty(t, pub.events)

		all, err := svc.ListPhotos(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("missing foreign keys are reported", func(t *testing.T) {
		svc, _ := newTestGallery(t, now)
		req := validPhoto()
		req.PhotographerID = nil
		req.CategoryID = nil

		_, err := svc.CreatePhoto(ctx, req)
		assert.ElementsMatch(t, []string{"photographerId", "categoryId"}, fieldNames(err))
	})

	t.Run("zero foreign key is accepted", func(t *testing.T) {
		svc, _ := newTestGallery(t, now)
		req := validPhoto()
		req.CategoryID = ptr(int64(0))

		photo, err := svc.CreatePhoto(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, int64(0), photo.CategoryID)
	})

	t.Run("text is stored verbatim", func(t *testing.T) {
		svc, _ := newTestGallery(t, now)
		req := validPhoto()
		req.Title = "<Untitled>"
		req.Description = ptr("Fish <swimming> upstream & <b>home</b>")

		photo, err := svc.CreatePhoto(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "<Untitled>", photo.Title)
		assert.Equal(t, "Fish <swimming> upstream & <b>home</b>", *photo.Description)

		stored, err := svc.GetPhoto(ctx, photo.ID)
		require.NoError(t, err)
		assert.Equal(t, photo, stored)
	})
}

func TestGalleryService_PhotoFilters(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGallery(t, time.Now())

	cases := []struct {
		photographer, category int64
		featured               bool
	}{
		{1, 1, true}, {2, 2, true}, {3, 3, true}, {1, 3, false}, {2, 4, false}, {3, 2, false},
	}
	for _, s := range cases {
		req := validPhoto()
		req.PhotographerID = ptr(s.photographer)
		req.CategoryID = ptr(s.category)
		req.Featured = ptr(s.featured)
		_, err := svc.CreatePhoto(ctx, req)
		require.NoError(t, err)
	}

	ids := func(photos []*models.Photo) []int64 {
		out := []int64{}
		for _, p := range photos {
			out = append(out, p.ID)
		}
		return out
	}

	featured, err := svc.ListFeaturedPhotos(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(featured))

	byCategory, err := svc.ListPhotosByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(byCategory))

	byPhotographer, err := svc.ListPhotosByPhotographer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 5}, ids(byPhotographer))

	none, err := svc.ListPhotosByPhotographer(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGalleryService_Categories(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGallery(t, time.Now())

	for _, name := range []string{"Portrait", "Landscape", "Street", "Abstract"} {
		_, err := svc.CreateCategory(ctx, models.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	macro, err := svc.CreateCategory(ctx, models.CreateCategoryRequest{Name: "Macro"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), macro.ID)
	assert.Nil(t, macro.Description)

	got, err := svc.GetCategory(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, macro, got)

	missing, err := svc.GetCategory(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = svc.CreateCategory(ctx, models.CreateCategoryRequest{})
	assert.Equal(t, []string{"name"}, fieldNames(err))
}

func TestGalleryService_Photographers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGallery(t, time.Now())

	_, err := svc.CreatePhotographer(ctx, models.CreatePhotographerRequest{
		Name: "Aanya Sharma", Bio: "Portrait specialist", ProfileImage: "https://img/a.jpg", Featured: ptr(true),
	})
	require.NoError(t, err)
	plain, err := svc.CreatePhotographer(ctx, models.CreatePhotographerRequest{
		Name: "Ravi Kumar", Bio: "Street", ProfileImage: "https://img/r.jpg",
	})
	require.NoError(t, err)
	assert.False(t, plain.Featured)
	assert.Nil(t, plain.Email)

	featured, err := svc.ListFeaturedPhotographers(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Aanya Sharma", featured[0].Name)

	all, err := svc.ListPhotographers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	t.Run("free-form optional fields are accepted", func(t *testing.T) {
		p, err := svc.CreatePhotographer(ctx, models.CreatePhotographerRequest{
			Name: strings.Repeat("n", 300), Bio: "b", ProfileImage: "p",
			Email: ptr("ravi at club"), Instagram: ptr(strings.Repeat("i", 150)),
		})
		require.NoError(t, err)
		assert.Equal(t, "ravi at club", *p.Email)
		assert.Len(t, p.Name, 300)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := svc.CreatePhotographer(ctx, models.CreatePhotographerRequest{Email: ptr("a@b.c")})
		assert.Equal(t, []string{"name", "bio", "profileImage"}, fieldNames(err))
	})
}

func TestGalleryService_Exhibitions(t *testing.T) {
	ctx := context.Background()

	newReq := func(start, end string) models.CreateExhibitionRequest {
		return models.CreateExhibitionRequest{
			Name:        "Drishya",
			Description: "Annual exhibition",
			Location:    "University Arts Gallery",
			StartDate:   ptr(start),
			EndDate:     ptr(end),
			CoverImage:  "https://img/cover.jpg",
		}
	}

	t.Run("current exhibition follows the clock", func(t *testing.T) {
		during, _ := newTestGallery(t, time.Date(2025, 4, 11, 12, 0, 0, 0, time.UTC))
		_, err := during.CreateExhibition(ctx, newReq("2025-04-10", "2025-04-13"))
		require.NoError(t, err)

		current, err := during.GetCurrentExhibition(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		assert.Equal(t, "Drishya", current.Name)

		after, _ := newTestGallery(t, time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC))
		_, err = after.CreateExhibition(ctx, newReq("2025-04-10", "2025-04-13"))
		require.NoError(t, err)

		current, err = after.GetCurrentExhibition(ctx)
		require.NoError(t, err)
		assert.Nil(t, current)
	})

	t.Run("RFC 3339 dates are accepted", func(t *testing.T) {
		svc, _ := newTestGallery(t, time.Now())
		e, err := svc.CreateExhibition(ctx, newReq("2025-04-10T09:00:00+05:30", "2025-04-13T18:00:00Z"))
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 10, 3, 30, 0, 0, time.UTC), e.StartDate)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc, _ := newTestGallery(t, time.Now())
		_, err := svc.CreateExhibition(ctx, newReq("10/04/2025", "2025-04-13"))
		assert.Equal(t, []string{"startDate"}, fieldNames(err))
	})

	t.Run("end before start", func(t *testing.T) {
		svc, pub := newTestGallery(t, time.Now())
		_, err := svc.CreateExhibition(ctx, newReq("2025-04-13", "2025-04-10"))
		assert.Equal(t, []string{"endDate"}, fieldNames(err))
		assert.Empty(t, pub.events)
	})
}

func TestGalleryService_Events(t *testing.T) {
	ctx := context.Background()
	svc, pub := newTestGallery(t, time.Now())

	for _, ex := range []int64{1, 1, 2} {
		_, err := svc.CreateEvent(ctx, models.CreateEventRequest{
			ExhibitionID: ptr(ex),
			Name:         "Workshop",
			Date:         ptr("2025-04-11"),
			Time:         "2:00 PM",
		})
		require.NoError(t, err)
	}

	events, err := svc.ListEventsByExhibition(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	all, err := svc.store.Events.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := svc.GetEvent(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ExhibitionID)
	assert.Len(t, pub.events, 3)

	_, err = svc.CreateEvent(ctx, models.CreateEventRequest{Name: "No exhibition", Date: ptr("2025-04-11"), Time: "1 PM"})
	assert.Equal(t, []string{"exhibitionId"}, fieldNames(err))
}

func TestGalleryService_NilPublisher(t *testing.T) {
	svc := NewGalleryService(repository.NewMemoryStore(nil), nil)
	_, err := svc.CreateCategory(context.Background(), models.CreateCategoryRequest{Name: "Macro"})
	assert.NoError(t, err)
}
