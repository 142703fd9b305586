// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Get("/version", h.getServerVersion)
		r.Post("/login", h.login)
		r.Post("/users/add", h.register)
	})

	// catalog, any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/movies", h.listMovies)
		r.Get("/movies/{title}", h.getMovie)
		r.Get("/genre/{name}", h.getGenre)
		r.Get("/directors/{name}", h.getDirector)
	})

	// user-scoped routes, owner only
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.ownerOnly)

		r.Get("/users/{userName}", h.getUser)
		r.Put("/user/{userName}", h.updateUser)
		r.Delete("/users/delete/{userName}", h.deleteUser)
		r.Post("/users/{userName}/favMovies/{favoriteMovies}", h.addFavoriteMovie)
		r.Delete("/users/{userName}/Movies/{favoriteMovies}", h.removeFavoriteMovie)
	})

	return router
}
