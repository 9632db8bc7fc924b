// Package seed loads the club's starter gallery and optional fake photos.
package seed

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/netra/gallery/internal/models"
	"github.com/netra/gallery/internal/observability"
	"github.com/netra/gallery/internal/repository"
)

// Summary counts the records created by Load
type Summary struct {
	Photographers int `json:"photographers"`
	Categories    int `json:"categories"`
	Photos        int `json:"photos"`
	Exhibitions   int `json:"exhibitions"`
	Events        int `json:"events"`
}

func unsplash(photo string, width int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=%d&q=80", photo, width)
}

func str(s string) *string { return &s }
func id(i int64) *int64    { return &i }
func flag(b bool) *bool    { return &b }

// Photographers returns the founding photographers
func Photographers() []models.CreatePhotographerRequest {
	return []models.CreatePhotographerRequest{
		{
			Name:         "Aanya Sharma",
			Bio:          "Specializes in portrait and street photography, capturing raw emotions and untold stories through her lens.",
			ProfileImage: unsplash("1534528741775-53994a69daeb", 400),
			Instagram:    str("@aanya.frames"),
			Email:        str("aanya.s@netra.club"),
			Featured:     flag(true),
		},
		{
			Name:         "Vikram Nair",
			Bio:          "Architecture and urban landscape photographer who finds beauty in geometric patterns and urban chaos.",
			ProfileImage: unsplash("1564564321837-a57b7070ac4f", 400),
			Instagram:    str("@viks.perspective"),
			Email:        str("vikram.n@netra.club"),
			Featured:     flag(true),
		},
		{
			Name:         "Zara Patel",
			Bio:          "Nature and wildlife photographer with a passion for documenting India's diverse ecosystems.",
			ProfileImage: unsplash("1546961329-78bef0414d7c", 400),
			Instagram:    str("@zara.wilderness"),
			Email:        str("zara.p@netra.club"),
			Featured:     flag(true),
		},
	}
}

// Categories returns the starter categories
func Categories() []models.CreateCategoryRequest {
	return []models.CreateCategoryRequest{
		{Name: "Portrait", Description: str("The art of capturing personality and emotion in a single frame.")},
		{Name: "Landscape", Description: str("Breathtaking views of natural scenery and dramatic horizons.")},
		{Name: "Street", Description: str("Candid moments from everyday life in urban environments.")},
		{Name: "Abstract", Description: str("Photography that challenges perceptions through unconventional perspectives.")},
	}
}

// Photos returns the starter photos. Ids refer to Photographers and
// Categories loaded into an empty store.
func Photos() []models.CreatePhotoRequest {
	photo := func(title, desc, image string, photographer, category int64, featured bool) models.CreatePhotoRequest {
		return models.CreatePhotoRequest{
			Title:          title,
			Description:    str(desc),
			ImageURL:       unsplash(image, 1600),
			ThumbnailURL:   unsplash(image, 400),
			PhotographerID: id(photographer),
			CategoryID:     id(category),
			Featured:       flag(featured),
		}
	}

	return []models.CreatePhotoRequest{
		photo("Urban Reflections", "Modern architecture creating symmetrical patterns in glass and steel.", "1500051638674-ff996a0ec29e", 2, 4, true),
		photo("Mountain Serenity", "Dawn breaking over the Himalayan peaks, capturing the first light.", "1536048810607-3dc7f86981cb", 3, 2, true),
		photo("Candid Moments", "The joy of unexpected laughter captured in a split second.", "1531123897727-8f129e1688ce", 1, 1, true),
		photo("City Life", "The hustle and energy of metropolitan existence, frozen in time.", "1605547560182-b491252b6b4f", 1, 3, false),
		photo("Geometric Patterns", "Finding order and harmony in architectural elements.", "1520853504280-249b72dc947c", 2, 4, false),
		photo("Wildlife Majesty", "A royal Bengal tiger spotted in its natural habitat.", "1615824996195-f780bba7cfab", 3, 2, true),
	}
}

// Exhibitions returns the Drishya exhibition
func Exhibitions() []models.CreateExhibitionRequest {
	return []models.CreateExhibitionRequest{
		{
			Name:        "Drishya",
			Description: "A visual journey through the lens of NETRA's talented photographers at Utkansh 2023. Experience diverse perspectives and artistic expressions captured in still frames.",
			Location:    "University Arts Gallery, Utkansh Building",
			StartDate:   str("2025-04-10"),
			EndDate:     str("2025-04-13"),
			CoverImage:  unsplash("1576566588028-4147f3842f27", 1600),
			MapURL:      str("https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d3888.5831474374966!2d77.53410537518788!3d12.934193515666305!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x0%3A0x0!2zMTLCsDU2JzAzLjEiTiA3N8KwMzInMTAuOCJF!5e0!3m2!1sen!2sin!4v1627980977128!5m2!1sen!2sin"),
		},
	}
}

// Events returns the Drishya programme. The first two dates fall in May,
// as published by the club.
func Events() []models.CreateEventRequest {
	return []models.CreateEventRequest{
		{ExhibitionID: id(1), Name: "Opening Ceremony", Description: str("Inauguration of Drishya exhibition by the Dean of Fine Arts."), Date: str("2025-05-10"), Time: "11:00 AM"},
		{ExhibitionID: id(1), Name: "Photography Workshop", Description: str("Learn the basics of composition and lighting with master photographer Rajiv Mehta."), Date: str("2025-05-11"), Time: "2:00 PM"},
		{ExhibitionID: id(1), Name: "Panel Discussion", Description: str("The future of digital photography in the age of AI and computational imaging."), Date: str("2025-04-12"), Time: "4:00 PM"},
		{ExhibitionID: id(1), Name: "Award Ceremony", Description: str("Recognition of outstanding photographs and photographers from the exhibition."), Date: str("2025-04-13"), Time: "5:00 PM"},
	}
}

// FakePhotos generates n photos attributed to the given photographers and
// categories. The same seed yields the same photos.
func FakePhotos(seed int64, n int, photographerIDs, categoryIDs []int64) []models.CreatePhotoRequest {
	if n <= 0 || len(photographerIDs) == 0 || len(categoryIDs) == 0 {
		return nil
	}

	f := gofakeit.New(seed)
	out := make([]models.CreatePhotoRequest, 0, n)
	for i := 0; i < n; i++ {
		key := f.UUID()
		out = append(out, models.CreatePhotoRequest{
			Title:          f.Sentence(3),
			Description:    str(f.Sentence(12)),
			ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/1600/1067", key),
			ThumbnailURL:   fmt.Sprintf("https://picsum.photos/seed/%s/400/267", key),
			PhotographerID: id(photographerIDs[f.Number(0, len(photographerIDs)-1)]),
			CategoryID:     id(categoryIDs[f.Number(0, len(categoryIDs)-1)]),
			Featured:       flag(f.Number(1, 10) == 1),
		})
	}
	return out
}

// Load inserts the starter gallery into store, followed by fakePhotos
// generated photos. It is meant for an empty store.
func Load(ctx context.Context, store *repository.Store, fakePhotos int, fakeSeed int64) (*Summary, error) {
	var sum Summary
	var photographerIDs, categoryIDs []int64

	for _, req := range Photographers() {
		p, err := store.Photographers.Add(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed photographer %q: %w", req.Name, err)
		}
		photographerIDs = append(photographerIDs, p.ID)
		sum.Photographers++
	}

	for _, req := range Categories() {
		c, err := store.Categories.Add(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("seed category %q: %w", req.Name, err)
		}
		categoryIDs = append(categoryIDs, c.ID)
		sum.Categories++
	}

	photos := append(Photos(), FakePhotos(fakeSeed, fakePhotos, photographerIDs, categoryIDs)...)
	for _, req := range photos {
		if _, err := store.Photos.Add(ctx, req); err != nil {
			return nil, fmt.Errorf("seed photo %q: %w", req.Title, err)
		}
		sum.Photos++
	}

	for _, req := range Exhibitions() {
		if _, err := store.Exhibitions.Add(ctx, req); err != nil {
			return nil, fmt.Errorf("seed exhibition %q: %w", req.Name, err)
		}
		sum.Exhibitions++
	}

	for _, req := range Events() {
		if _, err := store.Events.Add(ctx, req); err != nil {
			return nil, fmt.Errorf("seed event %q: %w", req.Name, err)
		}
		sum.Events++
	}

	observability.WithFields(map[string]interface{}{
		"photographers": sum.Photographers,
		"categories":    sum.Categories,
		"photos":        sum.Photos,
		"exhibitions":   sum.Exhibitions,
		"events":        sum.Events,
	}).Info("Seed data loaded")

	return &sum, nil
}

// Snapshot is every record held by a store, grouped by kind
type Snapshot struct {
	Photographers []*models.Photographer `json:"photographers"`
	Categories    []*models.Category     `json:"categories"`
	Photos        []*models.Photo        `json:"photos"`
	Exhibitions   []*models.Exhibition   `json:"exhibitions"`
	Events        []*models.Event        `json:"events"`
}

// Dump reads every gallery record from store
func Dump(ctx context.Context, store *repository.Store) (*Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Photographers, err = store.Photographers.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("dump photographers: %w", err)
	}
	if snap.Categories, err = store.Categories.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("dump categories: %w", err)
	}
	if snap.Photos, err = store.Photos.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("dump photos: %w", err)
	}
	if snap.Exhibitions, err = store.Exhibitions.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("dump exhibitions: %w", err)
	}
	if snap.Events, err = store.Events.GetAll(ctx); err != nil {
		return nil, fmt.Errorf("dump events: %w", err)
	}
	return &snap, nil
}
