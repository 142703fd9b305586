// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/utils"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.Welcome(r.Context()), http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteText(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
