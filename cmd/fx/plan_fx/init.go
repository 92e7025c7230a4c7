package plan_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderplan/internal/api/controllers"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
	"wanderplan/pkg/memcache"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(
	providePlanRepo,
	providePlanCache,
	provideExtractService,
	provideGeneratorService,
	provideImageService,
	providePlanService,
	providePlanController)

func providePlanRepo(db *gorm.DB) repositories.TravelPlanRepositoryInterface {
	return repositories.NewTravelPlanRepository(db)
}

func providePlanCache() *memcache.PlanCache {
	return memcache.NewPlanCache()
}

func provideExtractService(aiClient utils.TextClientInterface) services.ExtractServiceInterface {
	return services.NewExtractService(aiClient)
}

func provideGeneratorService(aiClient utils.TextClientInterface) services.GeneratorServiceInterface {
	return services.NewGeneratorService(aiClient)
}

func provideImageService(imageSearch utils.ImageSearchInterface) services.ImageServiceInterface {
	return services.NewImageService(imageSearch)
}

func providePlanService(
	extractService services.ExtractServiceInterface,
	generatorService services.GeneratorServiceInterface,
	imageService services.ImageServiceInterface,
	planRepo repositories.TravelPlanRepositoryInterface,
	planCache *memcache.PlanCache,
) services.PlanServiceInterface {
	return services.NewPlanService(extractService, generatorService, imageService, planRepo, planCache)
}

func providePlanController(planService services.PlanServiceInterface) *controllers.PlanController {
	return controllers.NewPlanController(planService)
}
