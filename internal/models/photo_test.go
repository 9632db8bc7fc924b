package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestNewPhoto(t *testing.T) {
	t.Run("copies request fields and assigns server fields", func(t *testing.T) {
		added := time.Date(2025, 4, 11, 9, 30, 0, 0, time.UTC)
		req := CreatePhotoRequest{
			Title:          "Urban Reflections",
			Description:    ptr("Glass and steel"),
			ImageURL:       "https://example.com/full.jpg",
			ThumbnailURL:   "https://example.com/thumb.jpg",
			PhotographerID: ptr(int64(2)),
			CategoryID:     ptr(int64(4)),
			Featured:       ptr(true),
		}

		photo := NewPhoto(7, req, added)

		assert.Equal(t, int64(7), photo.ID)
		assert.Equal(t, "Urban Reflections", photo.Title)
		require.NotNil(t, photo.Description)
		assert.Equal(t, "Glass and steel", *photo.Description)
		assert.Equal(t, int64(2), photo.PhotographerID)
		assert.Equal(t, int64(4), photo.CategoryID)
		assert.True(t, photo.Featured)
		assert.Equal(t, added, photo.DateAdded)
	})

	t.Run("featured defaults to false when omitted", func(t *testing.T) {
		photo := NewPhoto(1, CreatePhotoRequest{
			Title:          "City Life",
			ImageURL:       "a",
			ThumbnailURL:   "b",
			PhotographerID: ptr(int64(1)),
			CategoryID:     ptr(int64(3)),
		}, time.Now())

		assert.False(t, photo.Featured)
		assert.Nil(t, photo.Description)
	})
}

func TestNewPhotographer(t *testing.T) {
	p := NewPhotographer(3, CreatePhotographerRequest{
		Name:         "Zara Patel",
		Bio:          "Wildlife",
		ProfileImage: "https://example.com/zara.jpg",
	})

	assert.Equal(t, int64(3), p.ID)
	assert.False(t, p.Featured)
	assert.Nil(t, p.Instagram)
	assert.Nil(t, p.Email)
}

func TestNewExhibition(t *testing.T) {
	t.Run("parses date-only and RFC 3339 dates", func(t *testing.T) {
		ex, err := NewExhibition(1, CreateExhibitionRequest{
			Name:        "Drishya",
			Description: "A visual journey",
			Location:    "Arts Gallery",
			StartDate:   ptr("2025-04-10"),
			EndDate:     ptr("2025-04-13T18:00:00+05:30"),
			CoverImage:  "cover.jpg",
		})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), ex.StartDate)
		assert.Equal(t, time.Date(2025, 4, 13, 12, 30, 0, 0, time.UTC), ex.EndDate)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := NewExhibition(1, CreateExhibitionRequest{
			StartDate: ptr("10/04/2025"),
			EndDate:   ptr("2025-04-13"),
		})
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}

func TestExhibition_IsRunningAt(t *testing.T) {
	ex := &Exhibition{
		StartDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name     string
		at       time.Time
		expected bool
	}{
		{"before start", ex.StartDate.Add(-time.Nanosecond), false},
		{"exactly start", ex.StartDate, true},
		{"middle", ex.StartDate.Add(36 * time.Hour), true},
		{"exactly end", ex.EndDate, true},
		{"after end", ex.EndDate.Add(time.Nanosecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ex.IsRunningAt(tt.at))
		})
	}
}

func TestUserPassword(t *testing.T) {
	PasswordCost = 4

	t.Run("hash verifies the original password only", func(t *testing.T) {
		hash, err := HashPassword("correct horse")
		require.NoError(t, err)

		user := NewUser(1, CreateUserRequest{Username: "admin", Password: hash})
		assert.True(t, user.VerifyPassword("correct horse"))
		assert.False(t, user.VerifyPassword("battery staple"))
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		_, err := HashPassword("short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})
}
