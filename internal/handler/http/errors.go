// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
// incoming request does not include an "Authorization" header at all.
// Malformed header values are reported by [utils.ParseBearerToken] instead.
var ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")
