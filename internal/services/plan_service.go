package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"
	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/memcache"
	"wanderplan/pkg/utils"
)

type PlanServiceInterface interface {
	CreatePlanFromPrompt(ctx context.Context, prompt string) (string, error)
	GetPlanBySlug(ctx context.Context, slug string) (*response_models.TravelPlanResponse, error)
}

// PlanService runs the synthesis pipeline: extract, validate, derive slug,
// cache lookup, then generate + enrich + persist on a miss.
type PlanService struct {
	extractService   ExtractServiceInterface
	generatorService GeneratorServiceInterface
	imageService     ImageServiceInterface
	planRepo         repositories.TravelPlanRepositoryInterface
	planCache        *memcache.PlanCache
}

func NewPlanService(
	extractService ExtractServiceInterface,
	generatorService GeneratorServiceInterface,
	imageService ImageServiceInterface,
	planRepo repositories.TravelPlanRepositoryInterface,
	planCache *memcache.PlanCache,
) PlanServiceInterface {
	return &PlanService{
		extractService:   extractService,
		generatorService: generatorService,
		imageService:     imageService,
		planRepo:         planRepo,
		planCache:        planCache,
	}
}

const (
	unknownDestination = "Unknown"
	planCacheTTL       = time.Hour
)

func (p *PlanService) CreatePlanFromPrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", utils.ErrEmptyPrompt
	}

	details := p.extractService.ExtractTravelDetails(ctx, prompt)
	if !details.IsTravelRelated {
		return "", utils.ErrNotTravelRelated
	}
	if details.Destination == "" || details.Destination == unknownDestination {
		return "", utils.ErrDestinationNotFound
	}

	slug := utils.DeriveSlug(details.Destination, details.Days)

	// A destination + day-count pair generates content exactly once, ever.
	existing, err := p.planRepo.FindBySlug(ctx, slug)
	if err != nil {
		log.Printf("plan lookup failed for %q: %v", slug, err)
		return "", utils.ErrDatabaseError
	}
	if existing != nil {
		return existing.Slug, nil
	}

	payload := p.generatorService.GeneratePlan(ctx, details.Destination, details.Days)
	p.imageService.EnrichPlan(ctx, details.Destination, payload)

	record, err := toDBModel(slug, details.Destination, details.Days, payload)
	if err != nil {
		return "", fmt.Errorf("encode plan %q: %w", slug, err)
	}

	stored, err := p.planRepo.CreateIfAbsent(ctx, record)
	if err != nil {
		log.Printf("plan persistence failed for %q: %v", slug, err)
		return "", utils.ErrDatabaseError
	}

	return stored.Slug, nil
}

func (p *PlanService) GetPlanBySlug(ctx context.Context, slug string) (*response_models.TravelPlanResponse, error) {
	if cached, ok := p.planCache.Get(slug); ok {
		return cached, nil
	}

	record, err := p.planRepo.FindBySlug(ctx, slug)
	if err != nil {
		log.Printf("plan lookup failed for %q: %v", slug, err)
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrPlanNotFound
	}

	plan, err := toResponse(record)
	if err != nil {
		return nil, fmt.Errorf("decode plan %q: %w", slug, err)
	}

	p.planCache.Set(slug, plan, planCacheTTL)
	return plan, nil
}

func toDBModel(slug, destination string, days int, payload *response_models.PlanPayload) (*db_models.TravelPlan, error) {
	highlights, err := json.Marshal(payload.Highlights)
	if err != nil {
		return nil, err
	}
	itinerary, err := json.Marshal(payload.Itinerary)
	if err != nil {
		return nil, err
	}

	return &db_models.TravelPlan{
		Slug:        slug,
		Destination: destination,
		Days:        days,
		Description: payload.Description,
		Gastronomy:  payload.Gastronomy,
		SmartTravel: payload.SmartTravel,
		BudgetMin:   payload.Budget.Min,
		BudgetMax:   payload.Budget.Max,
		Highlights:  highlights,
		Itinerary:   itinerary,
		Image:       payload.Image,
	}, nil
}

func toResponse(record *db_models.TravelPlan) (*response_models.TravelPlanResponse, error) {
	var highlights []response_models.Highlight
	if len(record.Highlights) > 0 {
		if err := json.Unmarshal(record.Highlights, &highlights); err != nil {
			return nil, err
		}
	}

	var itinerary []response_models.ItineraryDay
	if len(record.Itinerary) > 0 {
		if err := json.Unmarshal(record.Itinerary, &itinerary); err != nil {
			return nil, err
		}
	}

	return &response_models.TravelPlanResponse{
		Slug:        record.Slug,
		Destination: record.Destination,
		Days:        record.Days,
		Description: record.Description,
		Highlights:  highlights,
		Gastronomy:  record.Gastronomy,
		SmartTravel: record.SmartTravel,
		Budget: response_models.Budget{
			Min: record.BudgetMin,
			Max: record.BudgetMax,
		},
		Itinerary: itinerary,
		Image:     record.Image,
		CreatedAt: record.CreatedAt,
	}, nil
}
