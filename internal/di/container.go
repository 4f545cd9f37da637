// Package di provides dependency injection configuration for the Giftwise server.
package di

import (
	"github.com/samber/do/v2"

	"github.com/giftwiseapp/giftwise-server/internal/config"
	"github.com/giftwiseapp/giftwise-server/internal/di/providers"
	"github.com/giftwiseapp/giftwise-server/internal/inference"
	"github.com/giftwiseapp/giftwise-server/internal/logger"
	"github.com/giftwiseapp/giftwise-server/internal/service"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Database layer
	do.Provide(injector, providers.ProvideStore)

	// Inference layer
	do.Provide(injector, providers.ProvideInferenceClient)

	// Business services
	do.Provide(injector, providers.ProvideRecommendationService)
	do.Provide(injector, providers.ProvideCatalogService)
	do.Provide(injector, providers.ProvideProfileService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	// Core infrastructure first; either failing is fatal.
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*logger.Logger](injector); err != nil {
		return err
	}

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*inference.Client](injector); err != nil {
		return err
	}

	// Business services
	if _, err := do.Invoke[*service.RecommendationService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.CatalogService](injector); err != nil {
		return err
	}
	if _, err := do.Invoke[*service.ProfileService](injector); err != nil {
		return err
	}

	// Server last, once everything it needs is alive.
	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
