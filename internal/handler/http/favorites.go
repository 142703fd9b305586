// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) addFavoriteMovie(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.FavoritesService.AddFavoriteMovie(r.Context(), chi.URLParam(r, "userName"), chi.URLParam(r, "favoriteMovies"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) removeFavoriteMovie(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.FavoritesService.RemoveFavoriteMovie(r.Context(), chi.URLParam(r, "userName"), chi.URLParam(r, "favoriteMovies"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
