package providers

import (
	"context"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/giftwiseapp/giftwise-server/internal/api"
	"github.com/giftwiseapp/giftwise-server/internal/config"
	"github.com/giftwiseapp/giftwise-server/internal/logger"
	"github.com/giftwiseapp/giftwise-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	recommendService := do.MustInvoke[*service.RecommendationService](i)
	catalogService := do.MustInvoke[*service.CatalogService](i)
	profileService := do.MustInvoke[*service.ProfileService](i)

	handler := api.NewServer(recommendService, catalogService, profileService, api.Config{
		CatalogPageSize:  cfg.Recommend.CatalogPageSize,
		LatestItemsLimit: cfg.Recommend.LatestItemsLimit,
	}, log.Logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start in background
	go func() {
		log.Info("HTTP server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", srv.Addr)

	return &HTTPServerHandle{Server: srv}, nil
}
