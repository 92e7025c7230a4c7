package image_fx

import (
	"log"
	"os"
	"wanderplan/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(ProvideImageSearch)

// ProvideImageSearch creates the Unsplash client. A missing access key is not
// fatal: image lookups will fail and every plan will simply ship without
// images.
func ProvideImageSearch() utils.ImageSearchInterface {
	accessKey := os.Getenv("UNSPLASH_ACCESS_KEY")
	if accessKey == "" {
		log.Println("UNSPLASH_ACCESS_KEY not set, plans will be created without images")
	}
	return utils.NewUnsplashClient(accessKey)
}
