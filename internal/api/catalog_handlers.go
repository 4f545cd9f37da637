package api

import (
	"net/http"
	"strconv"

	"github.com/giftwiseapp/giftwise-server/internal/domain"
	"github.com/giftwiseapp/giftwise-server/internal/http/response"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// handleListCategories returns the full tag vocabulary.
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	tags, err := s.catalogService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, tags, s.logger)
}

type categoryItemsResponse struct {
	Items      []domain.GiftItem `json:"items"`
	Pagination store.Pagination  `json:"pagination"`
}

// handleCategoryItems returns one price-ordered page of a category.
func (s *Server) handleCategoryItems(w http.ResponseWriter, r *http.Request) {
	tagID, err := queryInt64(r, "tag_id")
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	page, err := s.catalogService.ListItemsByTag(r.Context(), tagID, s.parsePaginationParams(r))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, categoryItemsResponse{
		Items:      page.Items,
		Pagination: page.Pagination,
	}, s.logger)
}

// handleDefaultItems returns the newest catalog items for the landing feed.
func (s *Server) handleDefaultItems(w http.ResponseWriter, r *http.Request) {
	limit := s.config.LatestItemsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := s.catalogService.ListLatestItems(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string][]domain.GiftItem{"items": items}, s.logger)
}
