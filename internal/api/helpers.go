package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	"github.com/giftwiseapp/giftwise-server/internal/errors"
	"github.com/giftwiseapp/giftwise-server/internal/store"
)

// decodeBody decodes the request body into v and validates it.
func (s *Server) decodeBody(r *http.Request, v any) error {
	if err := json.UnmarshalRead(r.Body, v); err != nil {
		return errors.InvalidInput("invalid request body")
	}
	return s.validator.Validate(v)
}

// queryInt64 parses a required int64 query parameter.
func queryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, errors.InvalidInputf("%s is required", name)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errors.InvalidInputf("%s must be an integer", name)
	}
	return v, nil
}

// pathID parses the {id} URL parameter.
func pathID(raw string) (int64, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, errors.InvalidInput("invalid id")
	}
	return v, nil
}

// parsePaginationParams parses page and limit from the query string.
func (s *Server) parsePaginationParams(r *http.Request) store.PaginationParams {
	params := store.DefaultPaginationParams()
	params.Limit = s.config.CatalogPageSize

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			params.Page = page
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			params.Limit = limit
		}
	}

	params.Validate()
	return params
}
