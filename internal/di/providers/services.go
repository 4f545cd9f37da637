package providers

import (
	"github.com/samber/do/v2"

	"github.com/giftwiseapp/giftwise-server/internal/config"
	"github.com/giftwiseapp/giftwise-server/internal/inference"
	"github.com/giftwiseapp/giftwise-server/internal/logger"
	"github.com/giftwiseapp/giftwise-server/internal/service"
)

// ProvideRecommendationService provides the recommendation resolver.
func ProvideRecommendationService(i do.Injector) (*service.RecommendationService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	client := do.MustInvoke[*inference.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRecommendationService(storeHandle.Store, client, service.RecommendationConfig{
		MaxItems:    cfg.Recommend.MaxItems,
		CacheExpiry: cfg.Recommend.CacheExpiry,
	}, log.Logger), nil
}

// ProvideCatalogService provides the catalog browse service.
func ProvideCatalogService(i do.Injector) (*service.CatalogService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewCatalogService(storeHandle.Store, log.Logger), nil
}

// ProvideProfileService provides the recipient profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewProfileService(storeHandle.Store, log.Logger), nil
}
