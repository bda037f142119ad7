// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 when a path matches a route but the method does not. This
// handler answers 404 instead so that unsupported methods do not reveal
// which paths exist. Patterns with URL parameters are matched through
// [chi.Mux.Match], so "/api/records/{id}" is covered as well.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, errRouteNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
