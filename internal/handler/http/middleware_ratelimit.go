// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-secure-store/internal/ratelimit"
	"github.com/MKhiriev/go-secure-store/internal/utils"
	"github.com/MKhiriev/go-secure-store/models"
)

// withRateLimit gates the wrapped routes with the given limiter. The client
// is identified by IP plus a User-Agent fingerprint, so distinct browsers
// behind one NAT are throttled independently.
//
// Admitted requests are annotated with X-RateLimit-Limit, -Remaining, and
// -Reset headers. Rejected requests get HTTP 429 with a Retry-After header
// and a JSON body describing the quota.
func (h *Handler) withRateLimit(limiter *ratelimit.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := ratelimit.ClientKey(clientIP(r), r.UserAgent())
			result := limiter.Allow(key)

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.Unix(), 10))

			if !result.Allowed {
				w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfterSeconds))

				_, _ = utils.WriteJSON(w, models.RateLimitExceededResponse{
					Success:    false,
					Error:      "Too many requests, please try again later",
					RetryAfter: result.RetryAfterSeconds,
					Limit:      result.Limit,
					WindowMs:   limiter.Profile().Window.Milliseconds(),
					Timestamp:  time.Now().UTC().Format(time.RFC3339),
				}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP returns the request's source IP without the port. RealIP
// middleware has already unwrapped X-Real-IP / X-Forwarded-For into
// RemoteAddr when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
