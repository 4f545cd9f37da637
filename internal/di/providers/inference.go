package providers

import (
	"github.com/samber/do/v2"

	"github.com/giftwiseapp/giftwise-server/internal/config"
	"github.com/giftwiseapp/giftwise-server/internal/inference"
	"github.com/giftwiseapp/giftwise-server/internal/logger"
)

// ProvideInferenceClient provides the chat completion client used for
// tag inference.
func ProvideInferenceClient(i do.Injector) (*inference.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	if cfg.Inference.APIKey == "" {
		log.Warn("No inference API key configured - recommendation requests will fail until one is set")
	}

	client := inference.NewClient(inference.Config{
		BaseURL: cfg.Inference.BaseURL,
		APIKey:  cfg.Inference.APIKey,
		Model:   cfg.Inference.Model,
		Timeout: cfg.Inference.Timeout,
		MaxTags: cfg.Inference.MaxTags,
	}, log.Logger)

	log.Info("Inference client ready",
		"base_url", cfg.Inference.BaseURL,
		"model", cfg.Inference.Model,
	)

	return client, nil
}
