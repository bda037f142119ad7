// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoCallerInContext is returned when an authenticated route runs
	// without a caller stored by the auth middleware.
	ErrNoCallerInContext = errors.New("no authenticated caller in request context")

	// ErrInvalidRequestBody is returned when the request body is not valid
	// JSON or a byte field is not valid base64.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidQueryParameter is returned when a numeric query parameter
	// cannot be parsed.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")

	// ErrRateLimited is returned when a caller exceeds its request rate.
	ErrRateLimited = errors.New("too many requests")

	errRouteNotFound = errors.New("route not found")
)
