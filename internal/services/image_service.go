package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/utils"
)

type ImageServiceInterface interface {
	EnrichPlan(ctx context.Context, destination string, payload *response_models.PlanPayload)
}

type ImageService struct {
	imageSearch utils.ImageSearchInterface
}

func NewImageService(imageSearch utils.ImageSearchInterface) ImageServiceInterface {
	return &ImageService{imageSearch: imageSearch}
}

const (
	maxConcurrentImageLookups = 5
	imageLookupTimeout        = 10 * time.Second
)

// EnrichPlan resolves one destination-level image and then one image per
// itinerary day. Day lookups run concurrently with all-settle semantics: a
// failed or empty lookup leaves that day with the destination image and never
// affects the other days or the request.
func (s *ImageService) EnrichPlan(ctx context.Context, destination string, payload *response_models.PlanPayload) {
	destinationImage := s.resolve(ctx, destination)
	payload.Image = destinationImage

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxConcurrentImageLookups)

	for i := range payload.Itinerary {
		wg.Add(1)
		go func(day *response_models.ItineraryDay) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			query := day.ImageQuery
			if query == "" {
				query = fmt.Sprintf("%s %s", destination, day.Title)
			}
			if image := s.resolve(ctx, query); image != "" {
				day.Image = image
			} else {
				day.Image = destinationImage
			}
		}(&payload.Itinerary[i])
	}

	wg.Wait()
}

func (s *ImageService) resolve(ctx context.Context, query string) string {
	lookupCtx, cancel := context.WithTimeout(ctx, imageLookupTimeout)
	defer cancel()

	image, err := s.imageSearch.SearchImage(lookupCtx, query)
	if err != nil {
		log.Printf("image lookup failed for %q: %v", query, err)
		return ""
	}
	return image
}
