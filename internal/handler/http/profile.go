// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 MedLink Authors

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medlink-app/medlink-api/internal/logger"
	"github.com/medlink-app/medlink-api/internal/service"
	"github.com/medlink-app/medlink-api/internal/store"
	"github.com/medlink-app/medlink-api/internal/utils"
	"github.com/medlink-app/medlink-api/models"
)

func (h *Handler) createProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.CreateProfile(ctx, req, ownerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrPublicIDExhausted):
			log.Err(err).Msg("public id generation exhausted")
			http.Error(w, "could not allocate a public id", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile creation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusCreated)
}

func (h *Handler) listProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	profiles, err := h.services.ProfileService.ListProfiles(ctx)
	if err != nil {
		log.Err(err).Msg("listing profiles failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

func (h *Handler) myProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	profiles, err := h.services.ProfileService.ListProfilesByOwner(ctx, ownerID)
	if err != nil {
		log.Err(err).Int64("ownerId", ownerID).Msg("listing own profiles failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, profiles, http.StatusOK)
}

// publicProfile serves the unauthenticated emergency lookup. Only the medical
// subset of the profile is returned; internal ids and ownership are withheld.
func (h *Handler) publicProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publicID := chi.URLParam(r, "publicId")

	profile, err := h.services.ProfileService.FindProfileByPublicID(ctx, publicID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrProfileNotFound):
			log.Info().Str("publicId", publicID).Msg("no profile for public id")
			http.Error(w, "profile not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("publicId", publicID).Msg("profile lookup failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, profile.PublicView(), http.StatusOK)
}

func (h *Handler) databaseInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	info, err := h.services.ProfileService.DatabaseInfo(ctx)
	if err != nil {
		log.Err(err).Msg("database info query failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
