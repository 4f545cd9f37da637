package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/giftwiseapp/giftwise-server/internal/http/response"
)

type createProfileRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	Age             *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	LongDescription string `json:"long_description" validate:"max=4000"`
}

type updateDescriptionRequest struct {
	LongDescription string `json:"long_description" validate:"required,max=4000"`
}

// handleListProfiles returns all recipient profiles.
func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.profileService.ListProfiles(r.Context())
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}
	response.Success(w, profiles, s.logger)
}

// handleCreateProfile creates a new recipient profile.
func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	profile, err := s.profileService.CreateProfile(r.Context(), req.Name, req.Age, req.LongDescription)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, profile, s.logger)
}

// handleGetProfile returns a single profile by id.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	profile, err := s.profileService.GetProfile(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profile, s.logger)
}

// handleUpdateProfileDescription replaces a profile's long description.
// A cached recommendation for the profile keeps serving until it expires.
func (s *Server) handleUpdateProfileDescription(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	var req updateDescriptionRequest
	if err := s.decodeBody(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	profile, err := s.profileService.UpdateDescription(r.Context(), id, req.LongDescription)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, profile, s.logger)
}
