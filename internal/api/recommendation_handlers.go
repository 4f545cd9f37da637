package api

import (
	"net/http"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/http/response"
	"github.com/giftwiseapp/giftwise-server/internal/service"
)

type recommendRequest struct {
	ProfileID       *int64 `json:"profileId"`
	LongDescription string `json:"longDescription"`
	Prompt          string `json:"prompt"`
}

type recommendResponse struct {
	Success  bool              `json:"success"`
	Gifts    []domain.GiftItem `json:"gifts"`
	Tags     []string          `json:"tags"`
	Strategy string            `json:"strategy,omitempty"`
	Cached   bool              `json:"cached"`
}

// handleRecommend resolves a recommendation for a profile or a free-form
// description. Profile requests go through the cache; description and
// prompt requests always resolve fresh.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recommendRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var (
		rec    *domain.Recommendation
		cached bool
		err    error
	)
	switch {
	case req.ProfileID != nil:
		rec, cached, err = s.recommendService.RecommendForProfile(ctx, *req.ProfileID)
	case req.LongDescription != "":
		rec, err = s.recommendService.Resolve(ctx, service.ResolveInput{Description: req.LongDescription})
	case req.Prompt != "":
		rec, err = s.recommendService.Resolve(ctx, service.ResolveInput{Description: req.Prompt})
	default:
		err = errors.InvalidInput("one of profileId, longDescription or prompt is required")
	}
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, recommendResponse{
		Success:  true,
		Gifts:    rec.Items,
		Tags:     rec.Tags,
		Strategy: rec.Strategy,
		Cached:   cached,
	}, s.logger)
}

type cacheLookupResponse struct {
	Cached bool              `json:"cached"`
	Gifts  []domain.GiftItem `json:"gifts,omitempty"`
}

// handleGetRecommendationCache reports whether a fresh cached result
// exists for a profile.
func (s *Server) handleGetRecommendationCache(w http.ResponseWriter, r *http.Request) {
	profileID, err := queryInt64(r, "profileId")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	entry, err := s.recommendService.LookupCache(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	if entry == nil {
		response.Success(w, cacheLookupResponse{Cached: false}, s.logger)
		return
	}

	response.Success(w, cacheLookupResponse{
		Cached: true,
		Gifts:  entry.Result.Items,
	}, s.logger)
}

type cacheWriteRequest struct {
	ProfileID *int64            `json:"profileId" validate:"required"`
	Gifts     []domain.GiftItem `json:"gifts" validate:"required"`
}

// handlePutRecommendationCache stores a client-supplied result for a
// profile, replacing any previous entry.
func (s *Server) handlePutRecommendationCache(w http.ResponseWriter, r *http.Request) {
	var req cacheWriteRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	_, err := s.recommendService.StoreCache(r.Context(), *req.ProfileID, domain.Recommendation{
		ProfileID: req.ProfileID,
		Items:     req.Gifts,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]bool{"success": true}, s.logger)
}
