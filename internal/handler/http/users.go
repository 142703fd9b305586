// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.FindUser(r.Context(), chi.URLParam(r, "userName"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(r.Context(), chi.URLParam(r, "userName"), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteUser answers with a confirmation text. A missing user is reported
// as 400 rather than 404 on this route.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "userName")

	err := h.services.UserService.DeleteUser(r.Context(), username)
	if errors.Is(err, service.ErrUserNotFound) {
		logger.FromRequest(r).Warn().Str("username", username).Msg("user to delete was not found")
		utils.WriteText(w, username+" was not found.", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, username+" was deleted.", http.StatusOK)
}
