package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderplan/internal/models/db_models"
	"wanderplan/internal/models/response_models"
	"wanderplan/pkg/memcache"
	"wanderplan/pkg/utils"
)

type fakeExtractService struct {
	details *response_models.TravelDetails
	calls   int
}

func (f *fakeExtractService) ExtractTravelDetails(ctx context.Context, prompt string) *response_models.TravelDetails {
	f.calls++
	return f.details
}

type fakeGeneratorService struct {
	calls int
}

func (f *fakeGeneratorService) GeneratePlan(ctx context.Context, destination string, days int) *response_models.PlanPayload {
	f.calls++
	return FallbackPlan(destination, days)
}

type fakeImageService struct{}

func (f *fakeImageService) EnrichPlan(ctx context.Context, destination string, payload *response_models.PlanPayload) {
	payload.Image = "https://images.example/" + destination + ".jpg"
	for i := range payload.Itinerary {
		payload.Itinerary[i].Image = payload.Image
	}
}

type fakePlanRepo struct {
	mu      sync.Mutex
	plans   map[string]*db_models.TravelPlan
	findErr error
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: make(map[string]*db_models.TravelPlan)}
}

func (f *fakePlanRepo) FindBySlug(ctx context.Context, slug string) (*db_models.TravelPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.plans[slug], nil
}

func (f *fakePlanRepo) CreateIfAbsent(ctx context.Context, plan *db_models.TravelPlan) (*db_models.TravelPlan, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.plans[plan.Slug]; ok {
		return existing, nil
	}
	plan.CreatedAt = time.Now().Unix()
	f.plans[plan.Slug] = plan
	return plan, nil
}

func newTestPlanService(extract *fakeExtractService, generator *fakeGeneratorService, repo *fakePlanRepo) PlanServiceInterface {
	return NewPlanService(extract, generator, &fakeImageService{}, repo, memcache.NewPlanCache())
}

func lisbonDetails() *response_models.TravelDetails {
	return &response_models.TravelDetails{Destination: "Lisbon", Days: 3, IsTravelRelated: true}
}

func TestCreatePlanFromPromptEmptyPrompt(t *testing.T) {
	extract := &fakeExtractService{details: lisbonDetails()}
	svc := newTestPlanService(extract, &fakeGeneratorService{}, newFakePlanRepo())

	_, err := svc.CreatePlanFromPrompt(context.Background(), "   ")

	assert.ErrorIs(t, err, utils.ErrEmptyPrompt)
	assert.Zero(t, extract.calls, "no backend call for an empty prompt")
}

func TestCreatePlanFromPromptNotTravelRelated(t *testing.T) {
	extract := &fakeExtractService{details: &response_models.TravelDetails{IsTravelRelated: false}}
	svc := newTestPlanService(extract, &fakeGeneratorService{}, newFakePlanRepo())

	_, err := svc.CreatePlanFromPrompt(context.Background(), "what is 2+2")

	assert.ErrorIs(t, err, utils.ErrNotTravelRelated)
}

func TestCreatePlanFromPromptUnknownDestination(t *testing.T) {
	extract := &fakeExtractService{details: &response_models.TravelDetails{
		Destination: "Unknown", Days: 3, IsTravelRelated: true,
	}}
	svc := newTestPlanService(extract, &fakeGeneratorService{}, newFakePlanRepo())

	_, err := svc.CreatePlanFromPrompt(context.Background(), "plan something")

	assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
}

func TestCreatePlanFromPromptFullRun(t *testing.T) {
	repo := newFakePlanRepo()
	generator := &fakeGeneratorService{}
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, generator, repo)

	slug, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "lisbon-tour-3-days", slug)
	assert.Equal(t, 1, generator.calls)

	stored := repo.plans[slug]
	require.NotNil(t, stored)
	assert.Equal(t, "Lisbon", stored.Destination)
	assert.Equal(t, 3, stored.Days)
	assert.Equal(t, "https://images.example/Lisbon.jpg", stored.Image)
	assert.NotEmpty(t, stored.Highlights)
	assert.NotEmpty(t, stored.Itinerary)
}

func TestCreatePlanFromPromptCacheHitShortCircuits(t *testing.T) {
	repo := newFakePlanRepo()
	repo.plans["lisbon-tour-3-days"] = &db_models.TravelPlan{Slug: "lisbon-tour-3-days", Destination: "Lisbon", Days: 3}

	generator := &fakeGeneratorService{}
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, generator, repo)

	slug, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")

	require.NoError(t, err)
	assert.Equal(t, "lisbon-tour-3-days", slug)
	assert.Zero(t, generator.calls, "cache hit must not regenerate")
}

func TestCreatePlanFromPromptIdempotent(t *testing.T) {
	repo := newFakePlanRepo()
	generator := &fakeGeneratorService{}
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, generator, repo)

	first, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")
	require.NoError(t, err)

	second, err := svc.CreatePlanFromPrompt(context.Background(), "Trip to LISBON for 3 days")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.plans, 1)
	assert.Equal(t, 1, generator.calls)
}

func TestCreatePlanFromPromptDatabaseError(t *testing.T) {
	repo := newFakePlanRepo()
	repo.findErr = assert.AnError
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, &fakeGeneratorService{}, repo)

	_, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")

	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetPlanBySlugNotFound(t *testing.T) {
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, &fakeGeneratorService{}, newFakePlanRepo())

	_, err := svc.GetPlanBySlug(context.Background(), "nowhere-tour-1-days")

	assert.ErrorIs(t, err, utils.ErrPlanNotFound)
}

func TestGetPlanBySlugRoundTrip(t *testing.T) {
	repo := newFakePlanRepo()
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, &fakeGeneratorService{}, repo)

	slug, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")
	require.NoError(t, err)

	plan, err := svc.GetPlanBySlug(context.Background(), slug)
	require.NoError(t, err)

	assert.Equal(t, "Lisbon", plan.Destination)
	assert.Equal(t, 3, plan.Days)
	require.Len(t, plan.Itinerary, 3)
	assert.Len(t, plan.Highlights, 3)
	assert.LessOrEqual(t, plan.Budget.Min, plan.Budget.Max)
}

func TestGetPlanBySlugServedFromCache(t *testing.T) {
	repo := newFakePlanRepo()
	svc := newTestPlanService(&fakeExtractService{details: lisbonDetails()}, &fakeGeneratorService{}, repo)

	slug, err := svc.CreatePlanFromPrompt(context.Background(), "3 days in Lisbon")
	require.NoError(t, err)

	_, err = svc.GetPlanBySlug(context.Background(), slug)
	require.NoError(t, err)

	// Even with the store gone, the cached read still succeeds.
	repo.mu.Lock()
	delete(repo.plans, slug)
	repo.mu.Unlock()

	plan, err := svc.GetPlanBySlug(context.Background(), slug)
	require.NoError(t, err)
	assert.Equal(t, "Lisbon", plan.Destination)
}
