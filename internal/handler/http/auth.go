// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/MKhiriev/go-movies-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	registeredUser, err := h.services.UserService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.UserName).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{User: foundUser, Token: token.SignedString}, http.StatusOK)
}
